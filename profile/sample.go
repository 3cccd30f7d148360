package profile

import "time"

// Sample returns a Store filled with demo reference data. It keeps the CLI
// usable without a data file and gives tests a realistic payload.
func Sample() *Store {
	profileText := `=== IDENTITY DOCUMENTS ===

DRIVER'S LICENSE:
  - License Number: D99887766
  - State: California (CA)
  - Expiration Date: 2025-12-15
  - Class: C (Standard)

PASSPORT:
  - Passport Number: P11223344
  - Country: United States
  - Expiration Date: 2029-05-20

=== INSURANCE POLICIES ===

AUTO INSURANCE:
  - Provider: Geico
  - Policy Number: 999-000-1234
  - Expiration Date: 2024-12-01

RENTERS INSURANCE:
  - Provider: Lemonade
  - Policy Number: LEM-2024-5678
  - Expiration Date: 2025-03-15

=== PERSONAL INFORMATION ===

NAME: John Michael Doe
EMAIL: johndoe@email.com
PHONE: +1 (555) 123-4567
ADDRESS: 123 Main Street, Apt 4B, San Francisco, CA 94102

=== PREFERENCES ===

WORK SCHEDULE: 9:00 AM - 5:00 PM PST, Monday - Friday
ENERGY PATTERNS: mornings LOW, mid-day HIGH, evenings LOW`

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return New(profileText, []Renewal{
		{Name: "Car Insurance (Geico)", Date: date(2024, time.December, 1), Notes: "Call 1-800-861-8380 or renew online"},
		{Name: "Driver's License", Date: date(2025, time.December, 15), Notes: "Renew online at dmv.ca.gov, ~$38"},
		{Name: "Renters Insurance (Lemonade)", Date: date(2025, time.March, 15), Notes: "Review coverage before renewal"},
		{Name: "Gym Membership (24 Hour Fitness)", Date: date(2026, time.January, 1), Notes: "Consider negotiating rate"},
		{Name: "Passport", Date: date(2029, time.May, 20)},
	})
}
