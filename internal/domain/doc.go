// Package domain models FARS accident records and the pure transformations
// over them: boundary parsing, monthly summarization, and state map
// preparation.
//
// # Data Source
//
// Records come from the NHTSA Fatality Analysis Reporting System (FARS), a
// census of fatal motor-vehicle crashes published as one accident file per
// year. Each archive is a comma-separated table named accident_<year>.csv.bz2
// with one row per crash. Column order and the full column set vary across
// FARS vintages, so rows are addressed by header name rather than position.
//
// # FARS Data Conventions
//
// State codes ("STATE" column):
//
//	GSA geographic codes, 1 (Alabama) through 56 (Wyoming). Codes 3, 7 and
//	14 are unassigned; 11 is the District of Columbia, 43 Puerto Rico and
//	52 the Virgin Islands. See [StateName].
//
// Coordinates ("LATITUDE", "LONGITUD" columns):
//
//	Decimal degrees, latitude positive north and longitude negative west of
//	Greenwich for the covered territory. Unknown positions are encoded
//	in-band with repeated-digit codes, canonically 99.9999 for latitude and
//	999.9999 for longitude. [Accident.LocationKnown] draws the line at 90
//	degrees latitude and 900 longitude: anything above is an unknown
//	position. Code variants below those cutoffs (77.7777 and 88.8888
//	latitude, 777.7777 and 888.8888 longitude in some vintages) are carried
//	as written. Unparseable coordinate text degrades to the canonical
//	codes, so a junk field behaves like an unreported position instead of
//	plotting at the origin.
//
// Months ("MONTH" column):
//
//	Calendar month number, 1 through 12 in well-formed files. The value is
//	carried as written; cmd/validate reports out-of-range months.
//
// Case numbers ("ST_CASE" column):
//
//	Unique within a state and year, reused freely across years.
package domain
