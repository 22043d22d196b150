// internals/features/hr/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dModel "pegawaiku_backend/internals/features/hr/departments/model"
	eDTO "pegawaiku_backend/internals/features/hr/employees/dto"
	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	helper "pegawaiku_backend/internals/helpers"
	"pegawaiku_backend/internals/helpers/dbtime"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

var employeeSortColumns = map[string]string{
	"name":            "employees.employee_name",
	"email":           "employees.employee_email",
	"date_of_joining": "employees.employee_date_of_joining",
	"created_at":      "employees.employee_created_at",
	"department_name": "departments.department_name",
}

/* ===================== HANDLERS ===================== */

// GET /api/employees
// Satu-satunya operasi publik di resource pegawai; sisanya butuh auth.
func (h *EmployeeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	dbq := h.DB.Model(&eModel.EmployeeModel{}).
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id")
	dbq = eDTO.ApplyEmployeeFilters(dbq, c.Queries(), dbtime.Today())

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []eModel.EmployeeModel
	if err := dbq.
		Select("employees.*").
		Preload("Department").
		Order(helper.SafeOrder(c, employeeSortColumns, "employees.employee_name ASC")).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*eDTO.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, eDTO.NewEmployeeResponse(&rows[i]))
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	})
}

// GET /api/employees/:id
func (h *EmployeeController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", eDTO.NewEmployeeResponse(m))
}

// POST /api/employees
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req eDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Tanggal masuk di masa depan bikin masa kerja negatif
	if req.EmployeeDateOfJoining.After(dbtime.Today()) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
			fiber.Map{"employee_date_of_joining": "tanggal masuk tidak boleh di masa depan"})
	}

	// Departemen harus ada (pegawai tak bisa dibuat tanpa parent)
	var dept dModel.DepartmentModel
	if err := h.DB.First(&dept, "department_id = ?", req.EmployeeDepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
				fiber.Map{"employee_department_id": "departemen tidak ditemukan"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Pre-check email; race yang lolos tetap ketangkap constraint DB
	if taken, err := h.emailTaken(req.EmployeeEmail, uuid.Nil); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	} else if taken {
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "Email sudah terdaftar",
			fiber.Map{"employee_email": "pegawai dengan email ini sudah ada"})
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, "Email sudah terdaftar",
				fiber.Map{"employee_email": "pegawai dengan email ini sudah ada"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat pegawai")
	}
	m.Department = &dept

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pegawai berhasil dibuat", eDTO.NewEmployeeResponse(m))
}

// PATCH /api/employees/:id
func (h *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req eDTO.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.EmployeeDateOfJoining != nil && req.EmployeeDateOfJoining.After(dbtime.Today()) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
			fiber.Map{"employee_date_of_joining": "tanggal masuk tidak boleh di masa depan"})
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if req.EmployeeEmail != nil {
		if taken, err := h.emailTaken(*req.EmployeeEmail, m.EmployeeID); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		} else if taken {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, "Email sudah terdaftar",
				fiber.Map{"employee_email": "pegawai dengan email ini sudah ada"})
		}
	}
	if req.EmployeeDepartmentID != nil {
		var n int64
		if err := h.DB.Model(&dModel.DepartmentModel{}).
			Where("department_id = ?", *req.EmployeeDepartmentID).Count(&n).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		if n == 0 {
			return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
				fiber.Map{"employee_department_id": "departemen tidak ditemukan"})
		}
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, "Email sudah terdaftar",
				fiber.Map{"employee_email": "pegawai dengan email ini sudah ada"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pegawai")
	}

	m2, err := h.findByID(m.EmployeeID) // reload relasi departemen
	if err != nil {
		return err
	}
	return helper.Success(c, "Pegawai diperbarui", eDTO.NewEmployeeResponse(m2))
}

// DELETE /api/employees/:id
// Cascade ke attendance & performance record pegawai ini.
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&eModel.EmployeeModel{}, "employee_id = ?", m.EmployeeID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pegawai")
	}
	return helper.Success(c, "Pegawai dihapus", fiber.Map{"employee_id": m.EmployeeID})
}

// GET /api/employees/statistics
func (h *EmployeeController) Statistics(c *fiber.Ctx) error {
	var joinDates []dbtime.DateOnly
	if err := h.DB.Model(&eModel.EmployeeModel{}).
		Pluck("employee_date_of_joining", &joinDates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	today := dbtime.Today()
	totalYears := 0
	for _, d := range joinDates {
		e := eModel.EmployeeModel{EmployeeDateOfJoining: d}
		totalYears += e.YearsOfService(today)
	}
	avgYears := 0.0
	if len(joinDates) > 0 {
		avgYears = helper.Round2(float64(totalYears) / float64(len(joinDates)))
	}

	type deptCount struct {
		DepartmentName string `json:"department_name"`
		EmployeeCount  int64  `json:"employee_count"`
	}
	var depts []deptCount
	if err := h.DB.Table("departments").
		Select("departments.department_name AS department_name, count(employees.employee_id) AS employee_count").
		Joins("LEFT JOIN employees ON employees.employee_department_id = departments.department_id").
		Group("departments.department_name").
		Order("departments.department_name ASC").
		Scan(&depts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	var recent []eModel.EmployeeModel
	if err := h.DB.Preload("Department").
		Order("employee_date_of_joining DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	recentItems := make([]*eDTO.EmployeeResponse, 0, len(recent))
	for i := range recent {
		recentItems = append(recentItems, eDTO.NewEmployeeResponse(&recent[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_employees":          len(joinDates),
		"average_years_of_service": avgYears,
		"departments":              depts,
		"recent_hires":             recentItems,
	})
}

// GET /api/employees/search?q=
func (h *EmployeeController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal",
			fiber.Map{"q": "parameter q wajib diisi"})
	}

	like := "%" + q + "%"
	var rows []eModel.EmployeeModel
	if err := h.DB.Model(&eModel.EmployeeModel{}).
		Joins("JOIN departments ON departments.department_id = employees.employee_department_id").
		Where(
			"employees.employee_name ILIKE ? OR employees.employee_email ILIKE ? OR employees.employee_phone_number ILIKE ? OR departments.department_name ILIKE ?",
			like, like, like, like,
		).
		Select("employees.*").
		Preload("Department").
		Order("employees.employee_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*eDTO.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, eDTO.NewEmployeeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== HELPERS ===================== */

func (h *EmployeeController) findByID(id uuid.UUID) (*eModel.EmployeeModel, error) {
	var m eModel.EmployeeModel
	if err := h.DB.Preload("Department").First(&m, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

// emailTaken: true kalau email sudah dipakai pegawai LAIN (exclude != uuid.Nil).
func (h *EmployeeController) emailTaken(email string, exclude uuid.UUID) (bool, error) {
	q := h.DB.Model(&eModel.EmployeeModel{}).Where("employee_email = ?", strings.TrimSpace(email))
	if exclude != uuid.Nil {
		q = q.Where("employee_id <> ?", exclude)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
