package database

import (
	"log"

	"dashboard-presensi-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Akun Admin
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Nama:     "Administrator",
		Email:    "admin@dashboard-presensi.local",
		Password: string(hashedPassword),
	}
	result := db.FirstOrCreate(&admin, model.User{Email: admin.Email})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan "admin123" meskipun user sudah ada
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Admin berhasil!")
	}

	// 2. Seed Kelas
	kelasFajar := model.Kelas{Nama: "Kelas Fajar", Aktif: true}
	db.FirstOrCreate(&kelasFajar, model.Kelas{Nama: kelasFajar.Nama})

	kelasMalam := model.Kelas{Nama: "Kelas Malam", Aktif: true}
	db.FirstOrCreate(&kelasMalam, model.Kelas{Nama: kelasMalam.Nama})

	// 3. Seed Jadwal per hari untuk kedua kelas
	for _, hari := range []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"} {
		jadwalFajar := model.Jadwal{
			KelasID:              &kelasFajar.ID,
			Hari:                 hari,
			Sesi:                 model.SesiFajar,
			WaktuMulaiPresensi:   "04:30:00",
			WaktuSelesaiPresensi: "06:00:00",
			Aktif:                true,
		}
		db.FirstOrCreate(&jadwalFajar, model.Jadwal{KelasID: &kelasFajar.ID, Hari: hari, Sesi: model.SesiFajar})

		jadwalMalam := model.Jadwal{
			KelasID:              &kelasMalam.ID,
			Hari:                 hari,
			Sesi:                 model.SesiMalam,
			WaktuMulaiPresensi:   "19:30:00",
			WaktuSelesaiPresensi: "21:00:00",
			Aktif:                true,
		}
		db.FirstOrCreate(&jadwalMalam, model.Jadwal{KelasID: &kelasMalam.ID, Hari: hari, Sesi: model.SesiMalam})
	}

	// 4. Seed Warga contoh + keanggotaan kelas
	kelompok := "Kelompok 1"
	warga := model.Warga{
		Nama:         "Warga Contoh",
		JenisKelamin: "L",
		Kelompok:     &kelompok,
		RFID:         "0001234567",
		Aktif:        true,
	}
	db.FirstOrCreate(&warga, model.Warga{RFID: warga.RFID})

	kw := model.KelasWarga{WargaID: warga.ID, KelasID: kelasFajar.ID}
	db.FirstOrCreate(&kw, model.KelasWarga{WargaID: warga.ID, KelasID: kelasFajar.ID})

	log.Println("Seeding data contoh selesai!")
}
