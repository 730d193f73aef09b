// Package timeutil converts the 12-hour clock values collected by the
// booking forms into the 24-hour representation the backend expects.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// To24Hour converts "hh:mm:ss AM/PM" (seconds optional) into "HH:MM:SS".
// Midnight ("12:xx:xx AM") maps to hour 00 and noon ("12:xx:xx PM") stays
// hour 12.
func To24Hour(value string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) != 2 {
		return "", fmt.Errorf("timeutil: %q is not a 12-hour clock value", value)
	}

	meridiem := strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return "", fmt.Errorf("timeutil: unknown meridiem %q", fields[1])
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("timeutil: %q is not a clock time", fields[0])
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("timeutil: %q is not a clock time", fields[0])
		}
		nums[i] = n
	}

	hours, minutes, seconds := nums[0], nums[1], nums[2]
	if hours < 1 || hours > 12 || minutes > 59 || seconds > 59 {
		return "", fmt.Errorf("timeutil: %q is out of range", fields[0])
	}

	if meridiem == "PM" && hours != 12 {
		hours += 12
	} else if meridiem == "AM" && hours == 12 {
		hours = 0
	}

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds), nil
}
