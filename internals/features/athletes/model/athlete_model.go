package model

import (
	"sort"
	"time"

	"gorm.io/gorm"
)

type Athlete struct {
	AthleteID uint `gorm:"column:athlete_id;primaryKey;autoIncrement" json:"athlete_id"`

	AthleteName      string `gorm:"column:athlete_name;size:120;not null" json:"athlete_name"`
	AthleteLevel     string `gorm:"column:athlete_level;size:40;not null" json:"athlete_level"`
	AthleteSquadYear int    `gorm:"column:athlete_squad_year;not null" json:"athlete_squad_year"`

	AthleteCreatedAt time.Time      `gorm:"column:athlete_created_at;autoCreateTime" json:"athlete_created_at"`
	AthleteUpdatedAt time.Time      `gorm:"column:athlete_updated_at;autoUpdateTime" json:"athlete_updated_at"`
	AthleteDeletedAt gorm.DeletedAt `gorm:"column:athlete_deleted_at;index" json:"-"`
}

func (Athlete) TableName() string { return "athletes" }

/* =========================================================
   Competition level ordering (fixed lookup table)
========================================================= */

// Roster pages list the highest levels first. This is presentation order,
// not a ranking stored anywhere.
var LevelRank = map[string]int{
	"elite":         0,
	"level_10":      1,
	"level_9":       2,
	"level_8":       3,
	"level_7":       4,
	"level_6":       5,
	"level_5":       6,
	"level_4":       7,
	"level_3":       8,
	"xcel_diamond":  9,
	"xcel_platinum": 10,
	"xcel_gold":     11,
	"xcel_silver":   12,
	"xcel_bronze":   13,
}

func IsValidLevel(l string) bool {
	_, ok := LevelRank[l]
	return ok
}

func SortByLevel(rows []Athlete) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, ok := LevelRank[rows[i].AthleteLevel]
		if !ok {
			ri = len(LevelRank)
		}
		rj, ok := LevelRank[rows[j].AthleteLevel]
		if !ok {
			rj = len(LevelRank)
		}
		if ri != rj {
			return ri < rj
		}
		return rows[i].AthleteName < rows[j].AthleteName
	})
}
