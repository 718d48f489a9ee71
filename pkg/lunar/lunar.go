// Package lunar converts solar dates to the Vietnamese lunar calendar and
// formats the parenthesized date line printed under the wedding date on the
// invitation. The astronomical formulas follow Ho Ngoc Duc's well-known
// Vietnamese lunar calendar implementation, computed for UTC+7.
package lunar

import (
	"fmt"
	"math"
	"time"
)

// Vietnam local offset in hours. Lunar month boundaries depend on it.
const timeZone = 7.0

var (
	// Indexed so that a year ending in 0 is Canh and a year ≡ 0 (mod 12)
	// is Thân.
	can = []string{"Canh", "Tân", "Nhâm", "Quý", "Giáp", "Ất", "Bính", "Đinh", "Mậu", "Kỷ"}
	chi = []string{"Thân", "Dậu", "Tuất", "Hợi", "Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ", "Ngọ", "Mùi"}
)

// YearCanChi returns the sexagenary (Can-Chi) name of a lunar year.
func YearCanChi(year int) string {
	return can[((year%10)+10)%10] + " " + chi[((year%12)+12)%12]
}

// Date is a converted lunar date.
type Date struct {
	Day   int
	Month int
	Year  int
	Leap  bool
}

// FullDateString converts a solar "YYYY-MM-DD" string into the formatted
// Vietnamese lunar date, e.g. "(Tức Ngày 18 Tháng Giêng Năm Ất Tỵ)". Months
// 1 and 12 use their traditional names Giêng and Chạp.
func FullDateString(solarDate string) (string, error) {
	t, err := time.Parse("2006-01-02", solarDate)
	if err != nil {
		return "", fmt.Errorf("invalid solar date %q: %w", solarDate, err)
	}

	ld := FromSolar(t.Day(), int(t.Month()), t.Year())

	month := fmt.Sprintf("%02d", ld.Month)
	switch ld.Month {
	case 1:
		month = "Giêng"
	case 12:
		month = "Chạp"
	}

	return fmt.Sprintf("(Tức Ngày %02d Tháng %s Năm %s)", ld.Day, month, YearCanChi(ld.Year)), nil
}

// FromSolar converts a solar calendar day to its lunar date.
func FromSolar(dd, mm, yy int) Date {
	dayNumber := jdFromDate(dd, mm, yy)
	k := int(math.Floor((float64(dayNumber) - 2415021.076998695) / 29.530588853))
	monthStart := newMoonDay(k + 1)
	if monthStart > dayNumber {
		monthStart = newMoonDay(k)
	}

	a11 := lunarMonth11(yy)
	b11 := a11
	lunarYear := yy
	if a11 >= monthStart {
		a11 = lunarMonth11(yy - 1)
	} else {
		lunarYear = yy + 1
		b11 = lunarMonth11(yy + 1)
	}

	lunarDay := dayNumber - monthStart + 1
	diff := int(math.Floor(float64(monthStart-a11) / 29))
	lunarMonth := diff + 11
	leap := false
	if b11-a11 > 365 {
		leapOffset := leapMonthOffset(a11)
		if diff >= leapOffset {
			lunarMonth = diff + 10
			if diff == leapOffset {
				leap = true
			}
		}
	}
	if lunarMonth > 12 {
		lunarMonth -= 12
	}
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}

	return Date{Day: lunarDay, Month: lunarMonth, Year: lunarYear, Leap: leap}
}

// jdFromDate returns the Julian day number of dd/mm/yy at noon.
func jdFromDate(dd, mm, yy int) int {
	a := (14 - mm) / 12
	y := yy + 4800 - a
	m := mm + 12*a - 3
	jd := dd + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	if jd < 2299161 {
		jd = dd + (153*m+2)/5 + 365*y + y/4 - 32083
	}
	return jd
}

// newMoon computes the Julian date of the k-th new moon after the one of
// 1 January 1900.
func newMoon(k int) float64 {
	kf := float64(k)
	t := kf / 1236.85
	t2 := t * t
	t3 := t2 * t
	dr := math.Pi / 180

	jd1 := 2415020.75933 + 29.53058868*kf + 0.0001178*t2 - 0.000000155*t3
	jd1 += 0.00033 * math.Sin((166.56+132.87*t-0.009173*t2)*dr)

	m := 359.2242 + 29.10535608*kf - 0.0000333*t2 - 0.00000347*t3
	mpr := 306.0253 + 385.81691806*kf + 0.0107306*t2 + 0.00001236*t3
	f := 21.2964 + 390.67050646*kf - 0.0016528*t2 - 0.00000239*t3

	c1 := (0.1734-0.000393*t)*math.Sin(m*dr) + 0.0021*math.Sin(2*dr*m)
	c1 -= 0.4068*math.Sin(mpr*dr) + 0.0161*math.Sin(dr*2*mpr)
	c1 -= 0.0004 * math.Sin(dr*3*mpr)
	c1 += 0.0104*math.Sin(dr*2*f) - 0.0051*math.Sin(dr*(m+mpr))
	c1 -= 0.0074*math.Sin(dr*(m-mpr)) + 0.0004*math.Sin(dr*(2*f+m))
	c1 -= 0.0004*math.Sin(dr*(2*f-m)) - 0.0006*math.Sin(dr*(2*f+mpr))
	c1 += 0.0010*math.Sin(dr*(2*f-mpr)) + 0.0005*math.Sin(dr*(2*mpr+m))

	var deltaT float64
	if t < -11 {
		deltaT = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltaT = -0.000278 + 0.000265*t + 0.000262*t2
	}

	return jd1 + c1 - deltaT
}

// newMoonDay returns the local calendar day on which the k-th new moon
// falls.
func newMoonDay(k int) int {
	return int(math.Floor(newMoon(k) + 0.5 + timeZone/24))
}

// sunLongitude returns the zodiac sector (0..11) of the sun's ecliptic
// longitude at local midnight beginning the given Julian day.
func sunLongitude(jdn int) int {
	t := (float64(jdn) - 2451545.5 - timeZone/24) / 36525
	t2 := t * t
	dr := math.Pi / 180

	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2
	dl := (1.914600-0.004817*t-0.000014*t2)*math.Sin(dr*m) +
		(0.019993-0.000101*t)*math.Sin(dr*2*m) +
		0.000290*math.Sin(dr*3*m)
	l := (l0 + dl) * dr
	l -= math.Pi * 2 * math.Floor(l/(math.Pi*2))
	return int(math.Floor(l / math.Pi * 6))
}

// lunarMonth11 finds the start day of lunar month 11 (the month containing
// the winter solstice) of the given year.
func lunarMonth11(yy int) int {
	off := jdFromDate(31, 12, yy) - 2415021
	k := int(math.Floor(float64(off) / 29.530588853))
	nm := newMoonDay(k)
	if sunLongitude(nm) >= 9 {
		nm = newMoonDay(k - 1)
	}
	return nm
}

// leapMonthOffset determines which month after the 11th month starting at
// a11 is the leap month.
func leapMonthOffset(a11 int) int {
	k := int(math.Floor((float64(a11)-2415021.076998695)/29.530588853 + 0.5))
	last := 0
	i := 1
	arc := sunLongitude(newMoonDay(k + i))
	for {
		last = arc
		i++
		arc = sunLongitude(newMoonDay(k + i))
		if arc == last || i >= 14 {
			break
		}
	}
	return i - 1
}
