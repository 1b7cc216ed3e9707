package attendance

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

const attendanceSheet = "Attendance"

var attendanceHeaders = []string{
	"Participant Name",
	"Participant Email",
	"Join Time",
	"Leave Time",
	"Engagement Score",
	"Current Emotion",
	"Engagement State",
}

// buildAttendanceWorkbook renders one row per attendance record under a fixed
// header row. Zero records still yield a valid workbook.
func buildAttendanceWorkbook(records []*entities.AttendanceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, err
	}

	for i, header := range attendanceHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(attendanceSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, record := range records {
		row := i + 2

		leaveTime := ""
		if record.LeaveTime != nil {
			leaveTime = record.LeaveTime.Format(time.RFC3339)
		}
		score := ""
		if record.EngagementScore != nil {
			score = fmt.Sprintf("%.2f", *record.EngagementScore)
		}

		values := []interface{}{
			record.ParticipantName,
			record.ParticipantEmail,
			record.JoinTime.Format(time.RFC3339),
			leaveTime,
			score,
			record.CurrentEmotion,
			record.CurrentEngagement,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(attendanceSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
