package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SafeOrder membangun klausa ORDER BY dari ?sort_by= & ?order= dengan
// whitelist kolom. sort_by di luar whitelist → fallback ke default.
func SafeOrder(c *fiber.Ctx, allowed map[string]string, def string) string {
	key := strings.TrimSpace(c.Query("sort_by"))
	col, ok := allowed[key]
	if !ok {
		return def
	}
	dir := "ASC"
	if strings.EqualFold(strings.TrimSpace(c.Query("order")), "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}
