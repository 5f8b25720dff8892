// Package ics renders release records as iCalendar documents.
//
// Each release becomes an all-day VEVENT with a rich description (runtime,
// star rating, genres, synopsis, cast, booking link) and optional VALARM
// reminders. Text escaping and 75-octet line folding follow RFC 5545. This
// is not a general iCalendar library; only the event and alarm shapes the
// pipeline emits are supported.
package ics
