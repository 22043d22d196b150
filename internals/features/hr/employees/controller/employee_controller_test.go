package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DB sengaja nil: tanggal masa depan harus ditolak SEBELUM ada akses DB.
func newTestApp() *fiber.App {
	ctrl := NewEmployeeController(nil)
	app := fiber.New()
	app.Post("/employees", ctrl.Create)
	app.Patch("/employees/:id", ctrl.Update)
	return app
}

func TestCreateRejectsFutureJoinDate(t *testing.T) {
	app := newTestApp()

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	body := `{
		"employee_name": "Budi Santoso",
		"employee_email": "budi.santoso@pegawaiku.example",
		"employee_phone_number": "+628123456789",
		"employee_date_of_joining": "` + future + `",
		"employee_department_id": "` + uuid.New().String() + `"
	}`

	req := httptest.NewRequest("POST", "/employees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "employee_date_of_joining") {
		t.Errorf("field error hilang dari body: %s", raw)
	}
}

func TestUpdateRejectsFutureJoinDate(t *testing.T) {
	app := newTestApp()

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	body := `{"employee_date_of_joining": "` + future + `"}`

	req := httptest.NewRequest("PATCH", "/employees/"+uuid.New().String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
