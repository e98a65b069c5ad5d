package domain

import "regexp"

// Account represents a ledger account identifier
type Account string

// accountPattern follows the account naming rules of the hosting ledger:
// lowercase alphanumeric segments separated by single dots, hyphens, or
// underscores, 2 to 64 characters total.
var accountPattern = regexp.MustCompile(`^([a-z\d]+[-_])*[a-z\d]+(\.([a-z\d]+[-_])*[a-z\d]+)*$`)

// Valid reports whether the account identifier is well-formed
func (a Account) Valid() bool {
	if len(a) < 2 || len(a) > 64 {
		return false
	}
	return accountPattern.MatchString(string(a))
}

func (a Account) String() string {
	return string(a)
}

// Baseline attributes stamped on every newly minted ship.
const (
	BaselineHealth    = 10
	BaselineAttack    = 10
	BaselineWeapons   = 10
	BaselineSpeed     = 5
	BaselineLevel     = 1
	BaselineMaxEnergy = 10
	BaselineEnergy    = 10
)
