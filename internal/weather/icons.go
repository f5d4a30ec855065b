package weather

import "fmt"

// fallbackIconURL is served for icon codes outside the published range.
const fallbackIconURL = "https://www.hko.gov.hk/images/wxicon/pic50.png"

// IconURL maps an HKO icon code to the official icon image URL. Codes at or
// below zero get a fixed fallback image.
func IconURL(iconCode int) string {
	if iconCode > 0 {
		return fmt.Sprintf("https://www.weather.gov.hk/images/HKOWxIconOutline/pic%d.png", iconCode)
	}
	return fallbackIconURL
}
