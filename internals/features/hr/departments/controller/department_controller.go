// internals/features/hr/departments/controller/department_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dDTO "pegawaiku_backend/internals/features/hr/departments/dto"
	dModel "pegawaiku_backend/internals/features/hr/departments/model"
	eDTO "pegawaiku_backend/internals/features/hr/employees/dto"
	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	helper "pegawaiku_backend/internals/helpers"
)

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

var departmentSortColumns = map[string]string{
	"name":       "department_name",
	"created_at": "department_created_at",
}

/* ===================== HANDLERS ===================== */

// POST /api/departments
func (h *DepartmentController) Create(c *fiber.Ctx) error {
	var req dDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, "Departemen sudah ada",
				fiber.Map{"department_name": "nama departemen sudah dipakai"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat departemen")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Departemen berhasil dibuat", dDTO.NewDepartmentResponse(m, 0))
}

// PATCH /api/departments/:id
func (h *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dDTO.UpdateDepartmentRequest
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
		if helper.IsUniqueViolation(err) {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, "Departemen sudah ada",
				fiber.Map{"department_name": "nama departemen sudah dipakai"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui departemen")
	}

	return helper.Success(c, "Departemen diperbarui", dDTO.NewDepartmentResponse(m, h.employeeCount(id)))
}

// DELETE /api/departments/:id
// Cascade: pegawai departemen ini ikut terhapus, berikut attendance &
// performance mereka (FK ON DELETE CASCADE di storage).
func (h *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&dModel.DepartmentModel{}, "department_id = ?", m.DepartmentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus departemen")
	}
	return helper.Success(c, "Departemen dihapus", fiber.Map{"department_id": m.DepartmentID})
}

// GET /api/departments/:id
func (h *DepartmentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", dDTO.NewDepartmentResponse(m, h.employeeCount(id)))
}

// GET /api/departments
func (h *DepartmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	dbq := dDTO.ApplyDepartmentFilters(h.DB.Model(&dModel.DepartmentModel{}), c.Queries())

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []dModel.DepartmentModel
	if err := dbq.
		Order(helper.SafeOrder(c, departmentSortColumns, "department_name ASC")).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	counts, err := h.employeeCounts(rows)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*dDTO.DepartmentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dDTO.NewDepartmentResponse(&rows[i], counts[rows[i].DepartmentID]))
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	})
}

// GET /api/departments/:id/employees
func (h *DepartmentController) Employees(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	var rows []eModel.EmployeeModel
	if err := h.DB.
		Preload("Department").
		Where("employee_department_id = ?", m.DepartmentID).
		Order("employee_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*eDTO.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, eDTO.NewEmployeeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

// GET /api/departments/statistics
func (h *DepartmentController) Statistics(c *fiber.Ctx) error {
	type deptCount struct {
		DepartmentName string `json:"department_name"`
		EmployeeCount  int64  `json:"employee_count"`
	}

	var rows []deptCount
	if err := h.DB.Table("departments").
		Select("departments.department_name AS department_name, count(employees.employee_id) AS employee_count").
		Joins("LEFT JOIN employees ON employees.employee_department_id = departments.department_id").
		Group("departments.department_name").
		Order("departments.department_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	var totalEmployees int64
	for _, r := range rows {
		totalEmployees += r.EmployeeCount
	}
	avg := 0.0
	if len(rows) > 0 {
		avg = helper.Round2(float64(totalEmployees) / float64(len(rows)))
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_departments":                len(rows),
		"total_employees":                  totalEmployees,
		"average_employees_per_department": avg,
		"departments":                      rows,
	})
}

/* ===================== HELPERS ===================== */

func (h *DepartmentController) findByID(id uuid.UUID) (*dModel.DepartmentModel, error) {
	var m dModel.DepartmentModel
	if err := h.DB.First(&m, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Departemen tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

func (h *DepartmentController) employeeCount(id uuid.UUID) int64 {
	var n int64
	h.DB.Model(&eModel.EmployeeModel{}).Where("employee_department_id = ?", id).Count(&n)
	return n
}

func (h *DepartmentController) employeeCounts(rows []dModel.DepartmentModel) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].DepartmentID)
	}

	type pair struct {
		DepartmentID uuid.UUID
		N            int64
	}
	var pairs []pair
	if err := h.DB.Model(&eModel.EmployeeModel{}).
		Select("employee_department_id AS department_id, count(*) AS n").
		Where("employee_department_id IN ?", ids).
		Group("employee_department_id").
		Scan(&pairs).Error; err != nil {
		return nil, err
	}
	for _, p := range pairs {
		out[p.DepartmentID] = p.N
	}
	return out, nil
}
