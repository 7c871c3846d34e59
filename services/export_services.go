package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportTeamScoresExcel renders the leaderboard as a spreadsheet for admins
func ExportTeamScoresExcel(hackathonName string, scores []TeamScore) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leaderboard"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Rank", "Team", "Category", "Judges", "Total Score", "Average Score"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, s := range scores {
		row := i + 2
		values := []interface{}{i + 1, s.TeamName, s.CategoryName, s.JudgeCount, s.TotalScore, s.AverageScore}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{Title: fmt.Sprintf("%s Leaderboard", hackathonName)}); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
