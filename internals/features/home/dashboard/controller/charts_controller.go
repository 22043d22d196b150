// internals/features/home/dashboard/controller/charts_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aModel "pegawaiku_backend/internals/features/attendance/attendances/model"
	pModel "pegawaiku_backend/internals/features/attendance/performances/model"
	"pegawaiku_backend/internals/features/home/dashboard/service"
	dModel "pegawaiku_backend/internals/features/hr/departments/model"
	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	helper "pegawaiku_backend/internals/helpers"
	"pegawaiku_backend/internals/helpers/cache"
	"pegawaiku_backend/internals/helpers/dbtime"
)

// Endpoint publik untuk chart landing page. Semua read-only, di-cache
// sebentar di Redis (best effort, jalan normal tanpa Redis).
type ChartsController struct {
	DB *gorm.DB
}

func NewChartsController(db *gorm.DB) *ChartsController {
	return &ChartsController{DB: db}
}

const chartCacheTTL = 5 * time.Minute

/* ===================== HANDLERS ===================== */

// GET /api/public/charts/department-stats
func (h *ChartsController) DepartmentStats(c *fiber.Ctx) error {
	const key = "charts:department-stats"

	var payload fiber.Map
	if cache.GetJSON(c.UserContext(), key, &payload) {
		return helper.Success(c, "OK", payload)
	}

	type deptCount struct {
		DepartmentName string `json:"department_name"`
		EmployeeCount  int64  `json:"employee_count"`
	}
	var rows []deptCount
	if err := h.DB.Table("departments").
		Select("departments.department_name AS department_name, count(employees.employee_id) AS employee_count").
		Joins("LEFT JOIN employees ON employees.employee_department_id = departments.department_id").
		Group("departments.department_name").
		Order("employee_count DESC, departments.department_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	labels := make([]string, 0, len(rows))
	data := make([]int64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.DepartmentName)
		data = append(data, r.EmployeeCount)
	}

	payload = fiber.Map{"labels": labels, "data": data}
	cache.SetJSON(c.UserContext(), key, payload, chartCacheTTL)
	return helper.Success(c, "OK", payload)
}

// GET /api/public/charts/attendance-monthly
// Seri 6 bulan kalender terakhir (bulan berjalan ikut walau parsial).
// Bulan tanpa record → 0/0/0.
func (h *ChartsController) AttendanceMonthly(c *fiber.Ctx) error {
	const key = "charts:attendance-monthly"

	var payload fiber.Map
	if cache.GetJSON(c.UserContext(), key, &payload) {
		return helper.Success(c, "OK", payload)
	}

	windows := service.LastNMonthWindows(6, dbtime.Today())

	labels := make([]string, 0, len(windows))
	presentSeries := make([]float64, 0, len(windows))
	absentSeries := make([]float64, 0, len(windows))
	lateSeries := make([]float64, 0, len(windows))

	for _, w := range windows {
		type row struct {
			Total   int64
			Present int64
			Absent  int64
			Late    int64
		}
		var r row
		if err := h.DB.Model(&aModel.AttendanceModel{}).
			Select(`count(*) AS total,
				count(*) FILTER (WHERE attendance_status = 'present') AS present,
				count(*) FILTER (WHERE attendance_status = 'absent') AS absent,
				count(*) FILTER (WHERE attendance_status = 'late') AS late`).
			Where("attendance_date BETWEEN ? AND ?", w.Start, w.End).
			Scan(&r).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
		}

		labels = append(labels, w.Label)
		presentSeries = append(presentSeries, helper.Percentage(r.Present, r.Total))
		absentSeries = append(absentSeries, helper.Percentage(r.Absent, r.Total))
		lateSeries = append(lateSeries, helper.Percentage(r.Late, r.Total))
	}

	payload = fiber.Map{
		"labels":  labels,
		"present": presentSeries,
		"absent":  absentSeries,
		"late":    lateSeries,
	}
	cache.SetJSON(c.UserContext(), key, payload, chartCacheTTL)
	return helper.Success(c, "OK", payload)
}

// GET /api/public/charts/dashboard-stats
func (h *ChartsController) DashboardStats(c *fiber.Ctx) error {
	const key = "charts:dashboard-stats"

	var payload fiber.Map
	if cache.GetJSON(c.UserContext(), key, &payload) {
		return helper.Success(c, "OK", payload)
	}

	var totalEmployees, totalDepartments int64
	if err := h.DB.Model(&eModel.EmployeeModel{}).Count(&totalEmployees).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := h.DB.Model(&dModel.DepartmentModel{}).Count(&totalDepartments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	today := dbtime.Today()
	since := dbtime.FromTime(today.AddDate(0, 0, -29))

	type attRow struct {
		Total   int64
		Present int64
	}
	var att attRow
	if err := h.DB.Model(&aModel.AttendanceModel{}).
		Select(`count(*) AS total,
			count(*) FILTER (WHERE attendance_status = 'present') AS present`).
		Where("attendance_date BETWEEN ? AND ?", since, today).
		Scan(&att).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	type perfRow struct {
		N   int64
		Avg float64
	}
	var perf perfRow
	if err := h.DB.Model(&pModel.PerformanceModel{}).
		Select("count(*) AS n, coalesce(avg(performance_rating), 0) AS avg").
		Scan(&perf).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	payload = fiber.Map{
		"total_employees":            totalEmployees,
		"total_departments":          totalDepartments,
		"attendance_rate_30_days":    helper.Percentage(att.Present, att.Total),
		"average_performance_rating": helper.Round2(perf.Avg),
		"total_reviews":              perf.N,
	}
	cache.SetJSON(c.UserContext(), key, payload, chartCacheTTL)
	return helper.Success(c, "OK", payload)
}
