package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/configs"
	attendanceModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	classLogModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
	studentModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/students/model"
	tuitionModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL (Supabase)...")

	// Full DSN + statement_timeout. With PgBouncer switch host/port to the
	// pooler port and keep PreferSimpleProtocol=true.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tuitiontrack&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// Stay under the Supabase/PgBouncer connection limits
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate() {
	if err := DB.AutoMigrate(
		&tuitionModel.TuitionModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceRecordModel{},
		&classLogModel.ClassLogModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Composite keys backing the atomic upserts. AutoMigrate cannot express
	// these, so they are created idempotently here.
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_records_student_tuition_date
		ON attendance_records (attendance_record_student_id, attendance_record_tuition_id, attendance_record_date)`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_class_logs_tuition_date
		ON class_logs (class_log_tuition_id, class_log_date)`)

	log.Println("✅ Migrations applied.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
