package util

import "time"

var (
	alertLayout = "02-Jan-2006"

	IstLocation = loadIst()
)

func loadIst() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// FormatAlertDate renders a bar timestamp the way alerts display it.
func FormatAlertDate(t time.Time) string {
	return t.In(IstLocation).Format(alertLayout)
}

// SeriesCacheTTL returns how long a fetched series stays valid in the
// shared cache: until the top of the next hour, so every process sees the
// same refresh boundary.
func SeriesCacheTTL() time.Duration {
	now := time.Now()
	return now.Truncate(time.Hour).Add(time.Hour).Sub(now)
}
