package domain

import "time"

const (
	FakultasFTI = "FTI"
	FakultasFHB = "FHB"
)

// Program studi codes, grouped by fakultas.
const (
	ProgramSTI = "STI" // Sistem dan Teknologi Informasi (FTI)
	ProgramSI  = "SI"  // Sistem Informasi (FTI)
	ProgramAK  = "AK"  // Akuntansi (FHB)
	ProgramMN  = "MN"  // Manajemen (FHB)
	ProgramHB  = "HB"  // Hukum Bisnis (FHB)
)

var programsByFakultas = map[string][]string{
	FakultasFTI: {ProgramSTI, ProgramSI},
	FakultasFHB: {ProgramAK, ProgramMN, ProgramHB},
}

var programNames = map[string]string{
	ProgramSTI: "Sistem dan Teknologi Informasi",
	ProgramSI:  "Sistem Informasi",
	ProgramAK:  "Akuntansi",
	ProgramMN:  "Manajemen",
	ProgramHB:  "Hukum Bisnis",
}

var fakultasNames = map[string]string{
	FakultasFTI: "Fakultas Teknologi dan Informasi",
	FakultasFHB: "Fakultas Hukum dan Bisnis",
}

type Registration struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Nama            string    `gorm:"not null" json:"nama"`
	NIM             string    `gorm:"column:nim;not null" json:"nim"`
	NoTelepon       string    `json:"no_telepon"`
	FotoKtmURL      string    `json:"foto_ktm_url"`
	AlamatDomisili  string    `json:"alamat_domisili"`
	Fakultas        string    `gorm:"type:varchar(8);not null" json:"fakultas"`
	ProgramStudi    string    `gorm:"type:varchar(8);not null" json:"program_studi"`
	AlasanBergabung string    `gorm:"type:text" json:"alasan_bergabung"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ValidPairing reports whether programStudi belongs to fakultas. Each
// fakultas has a fixed, disjoint set of allowed programs.
func ValidPairing(fakultas, programStudi string) bool {
	for _, p := range programsByFakultas[fakultas] {
		if p == programStudi {
			return true
		}
	}
	return false
}

func ValidFakultas(fakultas string) bool {
	_, ok := programsByFakultas[fakultas]
	return ok
}

func FakultasName(code string) string {
	if name, ok := fakultasNames[code]; ok {
		return name
	}
	return code
}

func ProgramStudiName(code string) string {
	if name, ok := programNames[code]; ok {
		return name
	}
	return code
}
