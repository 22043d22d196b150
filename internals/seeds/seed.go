// internals/seeds/seed.go
package seeds

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	aModel "pegawaiku_backend/internals/features/attendance/attendances/model"
	pModel "pegawaiku_backend/internals/features/attendance/performances/model"
	dModel "pegawaiku_backend/internals/features/hr/departments/model"
	eModel "pegawaiku_backend/internals/features/hr/employees/model"
	"pegawaiku_backend/internals/helpers/dbtime"
)

// SeedSampleData mengisi data contoh untuk development.
// No-op kalau tabel departments sudah berisi.
func SeedSampleData(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&dModel.DepartmentModel{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Println("[INFO] Seeder dilewati: data sudah ada")
		return nil
	}

	rng := rand.New(rand.NewSource(42)) // deterministik biar hasil seed stabil

	deptNames := []string{"Engineering", "Human Resources", "Finance", "Marketing", "Operations"}
	depts := make([]dModel.DepartmentModel, 0, len(deptNames))
	for _, name := range deptNames {
		depts = append(depts, dModel.DepartmentModel{DepartmentName: name})
	}
	if err := db.Create(&depts).Error; err != nil {
		return err
	}

	firstNames := []string{"Andi", "Budi", "Citra", "Dewi", "Eko", "Fitri", "Gilang", "Hana", "Indra", "Joko",
		"Kirana", "Lukman", "Maya", "Nanda", "Oki", "Putri", "Qori", "Rafi", "Sari", "Tono"}
	lastNames := []string{"Santoso", "Wijaya", "Pratama", "Saputra", "Lestari", "Hidayat", "Utami", "Kusuma"}

	today := dbtime.Today()
	employees := make([]eModel.EmployeeModel, 0, len(firstNames))
	for i, fn := range firstNames {
		ln := lastNames[rng.Intn(len(lastNames))]
		join := today.AddDate(-rng.Intn(10), -rng.Intn(12), -rng.Intn(28))
		employees = append(employees, eModel.EmployeeModel{
			EmployeeName:          fmt.Sprintf("%s %s", fn, ln),
			EmployeeEmail:         fmt.Sprintf("%s.%s%d@pegawaiku.example", strings.ToLower(fn), strings.ToLower(ln), i),
			EmployeePhoneNumber:   fmt.Sprintf("+62812%07d", rng.Intn(10000000)),
			EmployeeAddress:       fmt.Sprintf("Jl. Contoh No. %d, Jakarta", i+1),
			EmployeeDateOfJoining: dbtime.FromTime(join),
			EmployeeDepartmentID:  depts[i%len(depts)].DepartmentID,
		})
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}

	// ~60 hari kehadiran ke belakang, hari kerja saja
	statuses := []aModel.AttendanceStatus{
		aModel.AttendancePresent, aModel.AttendancePresent, aModel.AttendancePresent,
		aModel.AttendancePresent, aModel.AttendanceLate, aModel.AttendanceAbsent,
	}
	var attendances []aModel.AttendanceModel
	for d := 0; d < 60; d++ {
		date := dbtime.FromTime(today.AddDate(0, 0, -d))
		if date.IsWeekend() {
			continue
		}
		for i := range employees {
			if rng.Intn(10) == 0 { // sebagian hari bolong, biar realistis
				continue
			}
			attendances = append(attendances, aModel.AttendanceModel{
				AttendanceEmployeeID: employees[i].EmployeeID,
				AttendanceDate:       date,
				AttendanceStatus:     statuses[rng.Intn(len(statuses))],
			})
		}
	}
	if err := db.CreateInBatches(&attendances, 500).Error; err != nil {
		return err
	}

	comments := []string{
		"Konsisten melampaui target.",
		"Perlu perbaikan di komunikasi tim.",
		"Kinerja stabil, inisiatif bagus.",
		"Sering terlambat menyelesaikan tugas.",
		"Kandidat kuat untuk promosi.",
	}
	var performances []pModel.PerformanceModel
	for i := range employees {
		nReviews := 1 + rng.Intn(3)
		for r := 0; r < nReviews; r++ {
			comment := comments[rng.Intn(len(comments))]
			performances = append(performances, pModel.PerformanceModel{
				PerformanceEmployeeID: employees[i].EmployeeID,
				PerformanceRating:     1 + rng.Intn(5),
				PerformanceReviewDate: dbtime.FromTime(today.AddDate(0, -(r*3 + 1), -rng.Intn(28))),
				PerformanceComments:   &comment,
			})
		}
	}
	if err := db.Create(&performances).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeder selesai: %d departemen, %d pegawai, %d kehadiran, %d review",
		len(depts), len(employees), len(attendances), len(performances))
	return nil
}

