// internals/features/attendance/attendances/controller/attendance_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aDTO "pegawaiku_backend/internals/features/attendance/attendances/dto"
	aModel "pegawaiku_backend/internals/features/attendance/attendances/model"
	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	helper "pegawaiku_backend/internals/helpers"
	"pegawaiku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var attendanceSortColumns = map[string]string{
	"date":          "attendances.attendance_date",
	"status":        "attendances.attendance_status",
	"employee_name": "employees.employee_name",
	"created_at":    "attendances.attendance_created_at",
}

/* ===================== HANDLERS ===================== */

// GET /api/attendances
func (h *AttendanceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	dbq := h.DB.Model(&aModel.AttendanceModel{}).
		Joins("JOIN employees ON employees.employee_id = attendances.attendance_employee_id").
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id")
	dbq = aDTO.ApplyAttendanceFilters(dbq, c.Queries())

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []aModel.AttendanceModel
	if err := dbq.
		Select("attendances.*").
		Preload("Employee.Department").
		Order(helper.SafeOrder(c, attendanceSortColumns, "attendances.attendance_date DESC")).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*aDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, aDTO.NewAttendanceResponse(&rows[i]))
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	})
}

// GET /api/attendances/:id
func (h *AttendanceController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", aDTO.NewAttendanceResponse(m))
}

// POST /api/attendances
func (h *AttendanceController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Tanggal kehadiran tak boleh di masa depan
	if req.AttendanceDate.After(dbtime.Today()) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
			fiber.Map{"attendance_date": "tanggal kehadiran tidak boleh di masa depan"})
	}

	if err := h.ensureEmployee(req.AttendanceEmployeeID); err != nil {
		return err
	}

	// Pre-check (pegawai, tanggal); race ketangkap unique index DB
	var dup int64
	if err := h.DB.Model(&aModel.AttendanceModel{}).
		Where("attendance_employee_id = ? AND attendance_date = ?", req.AttendanceEmployeeID, req.AttendanceDate).
		Count(&dup).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if dup > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "Kehadiran sudah tercatat",
			fiber.Map{"attendance_date": "pegawai ini sudah punya record kehadiran di tanggal tersebut"})
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, "Kehadiran sudah tercatat",
				fiber.Map{"attendance_date": "pegawai ini sudah punya record kehadiran di tanggal tersebut"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
	}

	m2, err := h.findByID(m.AttendanceID)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran tercatat", aDTO.NewAttendanceResponse(m2))
}

// PATCH /api/attendances/:id
// Hanya status yang bisa diubah; pegawai & tanggal immutable.
func (h *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req aDTO.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kehadiran")
	}
	return helper.Success(c, "Kehadiran diperbarui", aDTO.NewAttendanceResponse(m))
}

// DELETE /api/attendances/:id
func (h *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&aModel.AttendanceModel{}, "attendance_id = ?", m.AttendanceID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kehadiran")
	}
	return helper.Success(c, "Kehadiran dihapus", fiber.Map{"attendance_id": m.AttendanceID})
}

// GET /api/attendances/today
func (h *AttendanceController) Today(c *fiber.Ctx) error {
	today := dbtime.Today()

	var rows []aModel.AttendanceModel
	if err := h.DB.
		Preload("Employee.Department").
		Where("attendance_date = ?", today).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*aDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, aDTO.NewAttendanceResponse(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"date":    today,
		"total":   len(items),
		"records": items,
	})
}

// GET /api/attendances/statistics?days=30
func (h *AttendanceController) Statistics(c *fiber.Ctx) error {
	days := 30
	if v := strings.TrimSpace(c.Query("days")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
				fiber.Map{"days": "days harus bilangan bulat positif"})
		}
		days = n
	}

	today := dbtime.Today()
	since := dbtime.FromTime(today.AddDate(0, 0, -(days - 1)))

	base := h.DB.Model(&aModel.AttendanceModel{}).
		Where("attendance_date BETWEEN ? AND ?", since, today)

	type statusCount struct {
		Status aModel.AttendanceStatus
		N      int64
	}
	var byStatus []statusCount
	if err := base.Session(&gorm.Session{}).
		Select("attendance_status AS status, count(*) AS n").
		Group("attendance_status").
		Scan(&byStatus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	var total, present, absent, late int64
	for _, s := range byStatus {
		total += s.N
		switch s.Status {
		case aModel.AttendancePresent:
			present = s.N
		case aModel.AttendanceAbsent:
			absent = s.N
		case aModel.AttendanceLate:
			late = s.N
		}
	}

	// Breakdown per departemen: count(*) FILTER khas Postgres
	type deptRow struct {
		DepartmentName string  `json:"department_name"`
		Total          int64   `json:"total"`
		Present        int64   `json:"present"`
		Absent         int64   `json:"absent"`
		Late           int64   `json:"late"`
		AttendanceRate float64 `json:"attendance_rate"`
	}
	var depts []deptRow
	if err := h.DB.Table("attendances").
		Select(`departments.department_name AS department_name,
			count(*) AS total,
			count(*) FILTER (WHERE attendances.attendance_status = 'present') AS present,
			count(*) FILTER (WHERE attendances.attendance_status = 'absent') AS absent,
			count(*) FILTER (WHERE attendances.attendance_status = 'late') AS late`).
		Joins("JOIN employees ON employees.employee_id = attendances.attendance_employee_id").
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id").
		Where("attendances.attendance_date BETWEEN ? AND ?", since, today).
		Group("departments.department_name").
		Order("departments.department_name ASC").
		Scan(&depts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	for i := range depts {
		depts[i].AttendanceRate = helper.Percentage(depts[i].Present, depts[i].Total)
	}

	return helper.Success(c, "OK", fiber.Map{
		"period_days":     days,
		"from":            since,
		"to":              today,
		"total_records":   total,
		"present":         present,
		"absent":          absent,
		"late":            late,
		"attendance_rate": helper.Percentage(present, total),
		"departments":     depts,
	})
}

// GET /api/attendances/employee-summary?employee_id=
func (h *AttendanceController) EmployeeSummary(c *fiber.Ctx) error {
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

	type statusCount struct {
		Status aModel.AttendanceStatus
		N      int64
	}
	var byStatus []statusCount
	if err := h.DB.Model(&aModel.AttendanceModel{}).
		Select("attendance_status AS status, count(*) AS n").
		Where("attendance_employee_id = ?", empID).
		Group("attendance_status").
		Scan(&byStatus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	var total, present, absent, late int64
	for _, s := range byStatus {
		total += s.N
		switch s.Status {
		case aModel.AttendancePresent:
			present = s.N
		case aModel.AttendanceAbsent:
			absent = s.N
		case aModel.AttendanceLate:
			late = s.N
		}
	}

	deptName := ""
	if emp.Department != nil {
		deptName = emp.Department.DepartmentName
	}

	return helper.Success(c, "OK", fiber.Map{
		"employee_id":     emp.EmployeeID,
		"employee_name":   emp.EmployeeName,
		"department_name": deptName,
		"total_records":   total,
		"present":         present,
		"absent":          absent,
		"late":            late,
		"attendance_rate": helper.Percentage(present, total),
	})
}

/* ===================== HELPERS ===================== */

func (h *AttendanceController) findByID(id uuid.UUID) (*aModel.AttendanceModel, error) {
	var m aModel.AttendanceModel
	if err := h.DB.Preload("Employee.Department").First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Record kehadiran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

func (h *AttendanceController) ensureEmployee(id uuid.UUID) error {
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
