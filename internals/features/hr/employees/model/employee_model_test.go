package model

import (
	"testing"

	"pegawaiku_backend/internals/helpers/dbtime"
)

func TestYearsOfService(t *testing.T) {
	cases := []struct {
		name string
		join string
		asOf string
		want int
	}{
		{"belum setahun", "2023-06-01", "2024-05-31", 0},
		{"tepat setahun", "2023-06-01", "2024-06-01", 1},
		{"lewat sehari", "2023-06-01", "2024-06-02", 1},
		{"kurang sehari dari 5 tahun", "2019-06-01", "2024-05-31", 4},
		{"tepat 5 tahun", "2019-06-01", "2024-06-01", 5},
		{"bulan sama hari kurang", "2019-06-15", "2024-06-14", 4},
		{"bulan sama hari sama", "2019-06-15", "2024-06-15", 5},
		{"masuk hari ini", "2024-06-15", "2024-06-15", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			join, err := dbtime.ParseDate(c.join)
			if err != nil {
				t.Fatal(err)
			}
			asOf, err := dbtime.ParseDate(c.asOf)
			if err != nil {
				t.Fatal(err)
			}
			m := EmployeeModel{EmployeeDateOfJoining: join}
			if got := m.YearsOfService(asOf); got != c.want {
				t.Errorf("YearsOfService(join=%s, asOf=%s) = %d, want %d", c.join, c.asOf, got, c.want)
			}
		})
	}
}
