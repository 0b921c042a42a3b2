// Package report renders apartment summaries for people: a localized plain
// text report and an xlsx workbook. Supported locales are Uzbek (the
// default of the original application), Russian and English.
package report
