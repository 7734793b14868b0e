package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	attModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	logModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
)

func record(day time.Time, present bool) attModel.AttendanceRecordModel {
	return attModel.AttendanceRecordModel{
		AttendanceRecordDate:      datatypes.Date(day),
		AttendanceRecordIsPresent: present,
	}
}

func classLog(day time.Time, conducted bool) logModel.ClassLogModel {
	return logModel.ClassLogModel{
		ClassLogDate:         datatypes.Date(day),
		ClassLogWasConducted: conducted,
	}
}

func TestWasConducted(t *testing.T) {
	day := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)

	assert.False(t, WasConducted(nil))
	assert.False(t, WasConducted([]attModel.AttendanceRecordModel{}))
	assert.False(t, WasConducted([]attModel.AttendanceRecordModel{
		record(day, false), record(day, false),
	}))
	assert.True(t, WasConducted([]attModel.AttendanceRecordModel{
		record(day, false), record(day, true), record(day, false),
	}))
}

func TestResolveConducted(t *testing.T) {
	mon := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)
	wed := time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC)
	fri := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	records := []attModel.AttendanceRecordModel{
		record(mon, true),
		// wed has rows but nobody present: attendance must override the
		// conducted=true manual log
		record(wed, false),
		record(wed, false),
	}
	logs := []logModel.ClassLogModel{
		classLog(wed, true),
		classLog(fri, true), // no attendance rows: log flag wins
	}

	signals := ResolveConducted(records, logs)

	assert.Equal(t, DaySignal{Conducted: true, Source: SourceAttendance}, signals[DateKey(mon)])
	assert.Equal(t, DaySignal{Conducted: false, Source: SourceAttendance}, signals[DateKey(wed)])
	assert.Equal(t, DaySignal{Conducted: true, Source: SourceLog}, signals[DateKey(fri)])
	_, ok := signals["2024-05-07"]
	assert.False(t, ok)
}
