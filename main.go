package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"pegawaiku_backend/internals/configs"
	database "pegawaiku_backend/internals/databases"
	helper "pegawaiku_backend/internals/helpers"
	"pegawaiku_backend/internals/helpers/cache"
	"pegawaiku_backend/internals/middlewares"
	"pegawaiku_backend/internals/route"
	"pegawaiku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "Pegawaiku Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.FromFiberError,
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	database.MigrateAll()

	cache.InitRedis()

	if configs.GetEnv("RUN_SEEDER") == "true" {
		if err := seeds.SeedSampleData(database.DB); err != nil {
			log.Printf("❌ Seeder gagal: %v", err)
		}
	}

	route.SetupRoutes(app, database.DB)

	// Graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("🛑 Shutting down...")
		_ = app.Shutdown()
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 Server jalan di :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server berhenti: %v", err)
	}
}
