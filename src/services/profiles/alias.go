package profiles

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// NotAvailable is the placeholder for attributes no alias can fill.
const NotAvailable = "N/A"

// Legacy seeded records carry several generations of field names. Each
// display attribute resolves through its alias list in order. The lists are
// a closed set: adding an alias here changes what old records render as.
var (
	nameAliases         = []string{"name", "Name"}
	emailAliases        = []string{"emailid", "email", "Email"}
	phoneAliases        = []string{"mobileno", "mobile", "phone"}
	fatherNameAliases   = []string{"father_name", "FatherName"}
	motherNameAliases   = []string{"mother_name", "MotherName"}
	parentMobileAliases = []string{"parent_mobile_number", "ParentMobile"}
	courseAliases       = []string{"course_enrollment", "Course"}
	gradYearAliases     = []string{"year_of_graduation", "Year"}
	studentIDAliases    = []string{"student_id", "id"}
)

// resolveString walks the alias list and returns the first present,
// non-empty value rendered as a string, or NotAvailable.
func resolveString(doc bson.M, aliases []string) string {
	for _, key := range aliases {
		v, ok := doc[key]
		if !ok || v == nil {
			continue
		}
		s := stringify(v)
		if s != "" {
			return s
		}
	}
	return NotAvailable
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.Itoa(int(t))
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// asFloat coerces legacy numeric fields that may arrive as string, int or
// float. Anything unparseable counts as 0, matching the dashboard defaults.
func asFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v interface{}) int {
	return int(asFloat(v))
}
