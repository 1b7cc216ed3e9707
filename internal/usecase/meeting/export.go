package meeting

import "github.com/xuri/excelize/v2"

const notesSheet = "Notes"

var notesHeaders = []string{"Participant", "Note", "Timestamp"}

// buildNotesWorkbook renders the notes export. Until notes capture ships
// there is nothing to put under the header row.
func buildNotesWorkbook() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", notesSheet); err != nil {
		return nil, err
	}

	for i, header := range notesHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(notesSheet, cell, header); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
