// internals/features/attendance/performances/controller/performance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pDTO "pegawaiku_backend/internals/features/attendance/performances/dto"
	pModel "pegawaiku_backend/internals/features/attendance/performances/model"
	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	helper "pegawaiku_backend/internals/helpers"
	"pegawaiku_backend/internals/helpers/dbtime"
)

type PerformanceController struct {
	DB *gorm.DB
}

func NewPerformanceController(db *gorm.DB) *PerformanceController {
	return &PerformanceController{DB: db}
}

var performanceSortColumns = map[string]string{
	"rating":        "performances.performance_rating",
	"review_date":   "performances.performance_review_date",
	"employee_name": "employees.employee_name",
	"created_at":    "performances.performance_created_at",
}

/* ===================== HANDLERS ===================== */

// GET /api/performances
func (h *PerformanceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	dbq := h.DB.Model(&pModel.PerformanceModel{}).
		Joins("JOIN employees ON employees.employee_id = performances.performance_employee_id").
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id")
	dbq = pDTO.ApplyPerformanceFilters(dbq, c.Queries())

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []pModel.PerformanceModel
	if err := dbq.
		Select("performances.*").
		Preload("Employee.Department").
		Order(helper.SafeOrder(c, performanceSortColumns, "performances.performance_review_date DESC")).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*pDTO.PerformanceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, pDTO.NewPerformanceResponse(&rows[i]))
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	})
}

// GET /api/performances/:id
func (h *PerformanceController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", pDTO.NewPerformanceResponse(m))
}

// POST /api/performances
func (h *PerformanceController) Create(c *fiber.Ctx) error {
	var req pDTO.CreatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.PerformanceReviewDate.After(dbtime.Today()) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
			fiber.Map{"performance_review_date": "tanggal review tidak boleh di masa depan"})
	}

	if err := h.ensureEmployee(req.PerformanceEmployeeID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat review")
	}

	m2, err := h.findByID(m.PerformanceID)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Review berhasil dibuat", pDTO.NewPerformanceResponse(m2))
}

// PATCH /api/performances/:id
func (h *PerformanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req pDTO.UpdatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.PerformanceReviewDate != nil && req.PerformanceReviewDate.After(dbtime.Today()) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
			fiber.Map{"performance_review_date": "tanggal review tidak boleh di masa depan"})
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui review")
	}
	return helper.Success(c, "Review diperbarui", pDTO.NewPerformanceResponse(m))
}

// DELETE /api/performances/:id
func (h *PerformanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&pModel.PerformanceModel{}, "performance_id = ?", m.PerformanceID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus review")
	}
	return helper.Success(c, "Review dihapus", fiber.Map{"performance_id": m.PerformanceID})
}

// GET /api/performances/statistics
func (h *PerformanceController) Statistics(c *fiber.Ctx) error {
	var total int64
	if err := h.DB.Model(&pModel.PerformanceModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	// Distribusi rating 1..5 — slot kosong tetap muncul dengan count 0
	type ratingCount struct {
		Rating int
		N      int64
	}
	var rcRows []ratingCount
	if err := h.DB.Model(&pModel.PerformanceModel{}).
		Select("performance_rating AS rating, count(*) AS n").
		Group("performance_rating").
		Scan(&rcRows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	counts := map[int]int64{}
	var sum int64
	for _, r := range rcRows {
		counts[r.Rating] = r.N
		sum += int64(r.Rating) * r.N
	}
	type distItem struct {
		Rating        int    `json:"rating"`
		RatingDisplay string `json:"rating_display"`
		Count         int64  `json:"count"`
	}
	dist := make([]distItem, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		dist = append(dist, distItem{
			Rating:        rating,
			RatingDisplay: pModel.RatingLabel(rating),
			Count:         counts[rating],
		})
	}
	avg := 0.0
	if total > 0 {
		avg = helper.Round2(float64(sum) / float64(total))
	}

	// Rata-rata per departemen; departemen tanpa review tidak ikut
	type deptAvg struct {
		DepartmentName string  `json:"department_name"`
		AverageRating  float64 `json:"average_rating"`
		ReviewCount    int64   `json:"review_count"`
	}
	var deptAvgs []deptAvg
	if err := h.DB.Table("performances").
		Select("departments.department_name AS department_name, avg(performances.performance_rating) AS average_rating, count(*) AS review_count").
		Joins("JOIN employees ON employees.employee_id = performances.performance_employee_id").
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id").
		Group("departments.department_name").
		Order("average_rating DESC").
		Scan(&deptAvgs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	for i := range deptAvgs {
		deptAvgs[i].AverageRating = helper.Round2(deptAvgs[i].AverageRating)
	}

	// Top performers: review terbaru dengan rating >= 4
	var top []pModel.PerformanceModel
	if err := h.DB.
		Preload("Employee.Department").
		Where("performance_rating >= ?", 4).
		Order("performance_review_date DESC, performance_created_at DESC").
		Limit(10).
		Find(&top).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	topItems := make([]*pDTO.PerformanceResponse, 0, len(top))
	for i := range top {
		topItems = append(topItems, pDTO.NewPerformanceResponse(&top[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_reviews":       total,
		"average_rating":      avg,
		"rating_distribution": dist,
		"department_averages": deptAvgs,
		"top_performers":      topItems,
	})
}

// GET /api/performances/employee-performance?employee_id=
func (h *PerformanceController) EmployeePerformance(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("employee_id"))
	if raw == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
			fiber.Map{"employee_id": "parameter employee_id wajib diisi"})
	}
	empID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var emp eModel.EmployeeModel
	if err := h.DB.Preload("Department").First(&emp, "employee_id = ?", empID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []pModel.PerformanceModel
	if err := h.DB.
		Preload("Employee.Department").
		Where("performance_employee_id = ?", empID).
		Order("performance_review_date DESC, performance_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*pDTO.PerformanceResponse, 0, len(rows))
	var sum int64
	for i := range rows {
		items = append(items, pDTO.NewPerformanceResponse(&rows[i]))
		sum += int64(rows[i].PerformanceRating)
	}
	avg := 0.0
	if len(rows) > 0 {
		avg = helper.Round2(float64(sum) / float64(len(rows)))
	}

	var latest *pDTO.PerformanceResponse
	if len(items) > 0 {
		latest = items[0]
	}

	// Trend dari review paling lama ke paling baru
	type trendPoint struct {
		ReviewDate dbtime.DateOnly `json:"review_date"`
		Rating     int             `json:"rating"`
	}
	trend := make([]trendPoint, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		trend = append(trend, trendPoint{
			ReviewDate: rows[i].PerformanceReviewDate,
			Rating:     rows[i].PerformanceRating,
		})
	}

	deptName := ""
	if emp.Department != nil {
		deptName = emp.Department.DepartmentName
	}

	return helper.Success(c, "OK", fiber.Map{
		"employee_id":     emp.EmployeeID,
		"employee_name":   emp.EmployeeName,
		"department_name": deptName,
		"total_reviews":   len(rows),
		"average_rating":  avg,
		"latest_review":   latest,
		"rating_trend":    trend,
		"reviews":         items,
	})
}

/* ===================== HELPERS ===================== */

func (h *PerformanceController) findByID(id uuid.UUID) (*pModel.PerformanceModel, error) {
	var m pModel.PerformanceModel
	if err := h.DB.Preload("Employee.Department").First(&m, "performance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Review tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

func (h *PerformanceController) ensureEmployee(id uuid.UUID) error {
	var n int64
	if err := h.DB.Model(&eModel.EmployeeModel{}).
		Where("employee_id = ?", id).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
	}
	return nil
}
