package standards

import (
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
)

// FirstGrade is the tightest IT grade covered by the tolerance table. Each
// size band lists one record per grade, starting here.
const FirstGrade = 6

// LastGrade is the coarsest IT grade covered by the tolerance table.
const LastGrade = 16

// GB/T 1957-2006 table 3: part nominal size against part tolerance, gauge
// tolerance T1 and go gauge offset Z1. Values in micrometres, one row per
// grade from IT6 to IT16.
func toleranceData() []model.ToleranceBand {
	return []model.ToleranceBand{
		band("0", "3",
			row{"6", "1", "1"}, row{"10", "1.2", "1.6"}, row{"14", "1.6", "2"},
			row{"25", "2", "3"}, row{"40", "2.4", "4"}, row{"60", "3", "6"},
			row{"100", "4", "9"}, row{"140", "6", "14"}, row{"250", "9", "20"},
			row{"400", "14", "30"}, row{"600", "20", "40"}),
		band("3", "6",
			row{"8", "1.2", "1.4"}, row{"12", "1.4", "2"}, row{"18", "2", "2.6"},
			row{"30", "2.4", "4"}, row{"48", "3", "5"}, row{"75", "4", "8"},
			row{"120", "5", "11"}, row{"180", "7", "16"}, row{"300", "11", "25"},
			row{"480", "16", "35"}, row{"750", "25", "50"}),
		band("6", "10",
			row{"9", "1.4", "1.6"}, row{"15", "1.8", "2.4"}, row{"22", "2.4", "3.2"},
			row{"36", "2.8", "5"}, row{"58", "3.6", "6"}, row{"90", "5", "9"},
			row{"150", "6", "13"}, row{"220", "8", "20"}, row{"360", "13", "30"},
			row{"580", "20", "40"}, row{"900", "30", "60"}),
		band("10", "18",
			row{"11", "1.6", "2"}, row{"18", "2", "2.8"}, row{"27", "2.8", "4"},
			row{"43", "3.4", "6"}, row{"70", "4", "8"}, row{"110", "6", "11"},
			row{"180", "7", "15"}, row{"270", "10", "24"}, row{"430", "15", "35"},
			row{"700", "24", "50"}, row{"1100", "35", "75"}),
		band("18", "30",
			row{"13", "2", "2.4"}, row{"21", "2.4", "3.4"}, row{"33", "3.4", "5"},
			row{"52", "4", "7"}, row{"84", "5", "9"}, row{"130", "7", "13"},
			row{"210", "8", "18"}, row{"330", "12", "28"}, row{"520", "18", "40"},
			row{"840", "28", "60"}, row{"1300", "40", "90"}),
		band("30", "50",
			row{"16", "2.4", "2.8"}, row{"25", "3", "4"}, row{"39", "4", "6"},
			row{"62", "5", "8"}, row{"100", "6", "11"}, row{"160", "8", "16"},
			row{"250", "10", "22"}, row{"390", "14", "34"}, row{"620", "22", "50"},
			row{"840", "28", "60"}, row{"1300", "40", "90"}),
		band("50", "80",
			row{"19", "2.8", "3.4"}, row{"30", "3.6", "4.6"}, row{"46", "4.6", "7"},
			row{"74", "6", "9"}, row{"120", "7", "13"}, row{"190", "9", "19"},
			row{"300", "12", "26"}, row{"460", "16", "40"}, row{"740", "26", "60"},
			row{"1200", "40", "90"}, row{"1900", "60", "130"}),
		band("80", "120",
			row{"22", "3.2", "3.8"}, row{"35", "4.2", "5.4"}, row{"54", "5.4", "8"},
			row{"87", "7", "10"}, row{"140", "8", "15"}, row{"220", "10", "22"},
			row{"350", "14", "30"}, row{"540", "20", "46"}, row{"870", "30", "70"},
			row{"1400", "46", "100"}, row{"2200", "70", "150"}),
		band("120", "180",
			row{"25", "3.8", "4.4"}, row{"40", "4.8", "6"}, row{"63", "6", "9"},
			row{"100", "8", "12"}, row{"160", "9", "18"}, row{"250", "12", "25"},
			row{"400", "16", "35"}, row{"630", "22", "52"}, row{"1000", "35", "80"},
			row{"1600", "52", "120"}, row{"2500", "80", "180"}),
		band("180", "250",
			row{"29", "4.4", "5"}, row{"46", "5.4", "7"}, row{"72", "7", "10"},
			row{"115", "9", "14"}, row{"185", "10", "20"}, row{"290", "14", "29"},
			row{"460", "18", "40"}, row{"720", "26", "60"}, row{"1150", "40", "90"},
			row{"1850", "60", "130"}, row{"2900", "90", "200"}),
		band("250", "315",
			row{"32", "4.8", "5.6"}, row{"52", "6", "8"}, row{"81", "8", "11"},
			row{"130", "10", "16"}, row{"210", "12", "22"}, row{"320", "16", "32"},
			row{"520", "20", "45"}, row{"810", "28", "66"}, row{"1300", "45", "100"},
			row{"2100", "66", "50"}, row{"3200", "100", "220"}),
		band("315", "400",
			row{"36", "5.4", "6.2"}, row{"57", "7", "9"}, row{"89", "9", "12"},
			row{"140", "11", "18"}, row{"230", "14", "25"}, row{"360", "18", "36"},
			row{"570", "22", "50"}, row{"890", "32", "74"}, row{"1400", "50", "110"},
			row{"2300", "74", "170"}, row{"3600", "110", "250"}),
		band("400", "500",
			row{"40", "6", "7"}, row{"63", "8", "10"}, row{"97", "10", "14"},
			row{"155", "12", "20"}, row{"250", "16", "28"}, row{"400", "20", "40"},
			row{"630", "24", "55"}, row{"970", "36", "80"}, row{"1550", "55", "120"},
			row{"2500", "80", "190"}, row{"4000", "120", "280"}),
	}
}

// GB/T 1957-2006 table 4: working gauge roughness Ra (micrometres) by part
// feature, part IT grade and gauge nominal size.
func gaugeRoughnessData() map[model.Feature][]model.RoughnessBand {
	return map[model.Feature][]model.RoughnessBand{
		model.FeatureHole: {
			roughness(6, 6, "0.05", "0.1", "0.2"),
			roughness(7, 9, "0.1", "0.2", "0.4"),
			roughness(10, 12, "0.2", "0.4", "0.8"),
			roughness(13, 16, "0.4", "0.8", "0.8"),
		},
		model.FeatureShaft: {
			roughness(6, 9, "0.1", "0.2", "0.4"),
			roughness(10, 12, "0.2", "0.4", "0.8"),
			roughness(13, 16, "0.4", "0.8", "0.8"),
		},
	}
}

// GB/T 1957-2006 table A.1: setting plug roughness Ra (micrometres) by part
// IT grade and setting plug nominal size.
func settingPlugRoughnessData() []model.RoughnessBand {
	return []model.RoughnessBand{
		roughness(6, 9, "0.05", "0.1", "0.2"),
		roughness(10, 12, "0.1", "0.2", "0.4"),
		roughness(13, 16, "0.2", "0.4", "0.4"),
	}
}

// row is tolerance, T1, Z1 as tabulated.
type row [3]string

func band(lower, upper string, rows ...row) model.ToleranceBand {
	records := make([]model.ToleranceRecord, 0, len(rows))
	for i, r := range rows {
		records = append(records, model.ToleranceRecord{
			Tolerance: decimal.RequireFromString(r[0]),
			T1:        decimal.RequireFromString(r[1]),
			Z1:        decimal.RequireFromString(r[2]),
			ITGrade:   FirstGrade + i,
		})
	}
	return model.ToleranceBand{
		Size:    bracket(lower, upper),
		Records: records,
	}
}

// roughnessSizes are the gauge nominal size brackets shared by tables 4 and A.1.
var roughnessSizes = [][2]string{{"0", "120"}, {"120", "315"}, {"315", "500"}}

func roughness(lowerGrade, upperGrade int, ra ...string) model.RoughnessBand {
	entries := make([]model.RoughnessEntry, 0, len(ra))
	for i, value := range ra {
		entries = append(entries, model.RoughnessEntry{
			Size: bracket(roughnessSizes[i][0], roughnessSizes[i][1]),
			Ra:   decimal.RequireFromString(value),
		})
	}
	return model.RoughnessBand{
		Grades:  model.GradeBracket{Lower: lowerGrade, Upper: upperGrade},
		Entries: entries,
	}
}

func bracket(lower, upper string) model.SizeBracket {
	return model.SizeBracket{
		Lower: decimal.RequireFromString(lower),
		Upper: decimal.RequireFromString(upper),
	}
}
