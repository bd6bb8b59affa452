package datetime

import (
	"golang.org/x/text/language"
)

// Locale holds the names, designators and standard patterns used when
// formatting. Day names start with Sunday, matching time.Weekday.
type Locale struct {
	Tag language.Tag

	MonthNames       [12]string
	AbbrevMonthNames [12]string
	DayNames         [7]string
	AbbrevDayNames   [7]string

	AMDesignator string
	PMDesignator string
	EraName      string

	DateSeparator string
	TimeSeparator string

	ShortDatePattern    string
	LongDatePattern     string
	ShortTimePattern    string
	LongTimePattern     string
	FullDateTimePattern string
	MonthDayPattern     string
	YearMonthPattern    string
}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishAbbrevMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var englishDays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var englishAbbrevDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Invariant is the culture-independent locale. It is also used for the
// round-trip, RFC 1123 and sortable standard formats regardless of the
// locale passed in.
var Invariant = &Locale{
	Tag:                 language.Und,
	MonthNames:          englishMonths,
	AbbrevMonthNames:    englishAbbrevMonths,
	DayNames:            englishDays,
	AbbrevDayNames:      englishAbbrevDays,
	AMDesignator:        "AM",
	PMDesignator:        "PM",
	EraName:             "A.D.",
	DateSeparator:       "/",
	TimeSeparator:       ":",
	ShortDatePattern:    "MM/dd/yyyy",
	LongDatePattern:     "dddd, dd MMMM yyyy",
	ShortTimePattern:    "HH:mm",
	LongTimePattern:     "HH:mm:ss",
	FullDateTimePattern: "dddd, dd MMMM yyyy HH:mm:ss",
	MonthDayPattern:     "MMMM dd",
	YearMonthPattern:    "yyyy MMMM",
}

// AmericanEnglish is the en-US locale.
var AmericanEnglish = &Locale{
	Tag:                 language.AmericanEnglish,
	MonthNames:          englishMonths,
	AbbrevMonthNames:    englishAbbrevMonths,
	DayNames:            englishDays,
	AbbrevDayNames:      englishAbbrevDays,
	AMDesignator:        "AM",
	PMDesignator:        "PM",
	EraName:             "A.D.",
	DateSeparator:       "/",
	TimeSeparator:       ":",
	ShortDatePattern:    "M/d/yyyy",
	LongDatePattern:     "dddd, MMMM d, yyyy",
	ShortTimePattern:    "h:mm tt",
	LongTimePattern:     "h:mm:ss tt",
	FullDateTimePattern: "dddd, MMMM d, yyyy h:mm:ss tt",
	MonthDayPattern:     "MMMM d",
	YearMonthPattern:    "MMMM yyyy",
}

// BritishEnglish is the en-GB locale.
var BritishEnglish = &Locale{
	Tag:                 language.BritishEnglish,
	MonthNames:          englishMonths,
	AbbrevMonthNames:    englishAbbrevMonths,
	DayNames:            englishDays,
	AbbrevDayNames:      englishAbbrevDays,
	AMDesignator:        "am",
	PMDesignator:        "pm",
	EraName:             "AD",
	DateSeparator:       "/",
	TimeSeparator:       ":",
	ShortDatePattern:    "dd/MM/yyyy",
	LongDatePattern:     "dddd, d MMMM yyyy",
	ShortTimePattern:    "HH:mm",
	LongTimePattern:     "HH:mm:ss",
	FullDateTimePattern: "dddd, d MMMM yyyy HH:mm:ss",
	MonthDayPattern:     "d MMMM",
	YearMonthPattern:    "MMMM yyyy",
}

// German is the de-DE locale.
var German = &Locale{
	Tag: language.MustParse("de-DE"),
	MonthNames: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	AbbrevMonthNames: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	DayNames: [7]string{
		"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
	},
	AbbrevDayNames:      [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	AMDesignator:        "AM",
	PMDesignator:        "PM",
	EraName:             "n. Chr.",
	DateSeparator:       ".",
	TimeSeparator:       ":",
	ShortDatePattern:    "dd.MM.yyyy",
	LongDatePattern:     "dddd, d. MMMM yyyy",
	ShortTimePattern:    "HH:mm",
	LongTimePattern:     "HH:mm:ss",
	FullDateTimePattern: "dddd, d. MMMM yyyy HH:mm:ss",
	MonthDayPattern:     "d. MMMM",
	YearMonthPattern:    "MMMM yyyy",
}

// French is the fr-FR locale.
var French = &Locale{
	Tag: language.MustParse("fr-FR"),
	MonthNames: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	AbbrevMonthNames: [12]string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	DayNames: [7]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	},
	AbbrevDayNames:      [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	AMDesignator:        "AM",
	PMDesignator:        "PM",
	EraName:             "ap. J.-C.",
	DateSeparator:       "/",
	TimeSeparator:       ":",
	ShortDatePattern:    "dd/MM/yyyy",
	LongDatePattern:     "dddd d MMMM yyyy",
	ShortTimePattern:    "HH:mm",
	LongTimePattern:     "HH:mm:ss",
	FullDateTimePattern: "dddd d MMMM yyyy HH:mm:ss",
	MonthDayPattern:     "d MMMM",
	YearMonthPattern:    "MMMM yyyy",
}

var (
	builtin = []*Locale{AmericanEnglish, BritishEnglish, German, French}
	matcher = language.NewMatcher([]language.Tag{
		AmericanEnglish.Tag, BritishEnglish.Tag, German.Tag, French.Tag,
	})
)

// LookupLocale returns the built-in locale that best matches tag, or
// Invariant when none does.
func LookupLocale(tag language.Tag) *Locale {
	if tag == language.Und {
		return Invariant
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return Invariant
	}
	return builtin[i]
}

// ParseLocale parses a BCP 47 tag such as "de-CH" and returns the best
// matching built-in locale.
func ParseLocale(s string) (*Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, err
	}
	return LookupLocale(tag), nil
}
