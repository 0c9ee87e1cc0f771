package usecase

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated caller")
	ErrForbidden       = errors.New("caller is not allowed to perform this operation")

	ErrStartupNotFound      = errors.New("startup not found")
	ErrOfferNotFound        = errors.New("equity offer not found")
	ErrEntryNotFound        = errors.New("cap table entry not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidStartupID        = errors.New("invalid startup_id")
	ErrInvalidStartupName      = errors.New("invalid startup name")
	ErrInvalidProfessionalID   = errors.New("invalid professional_id")
	ErrInvalidOfferID          = errors.New("invalid offer id")
	ErrInvalidEntryID          = errors.New("invalid cap table entry id")
	ErrInvalidNotificationID   = errors.New("invalid notification id")
	ErrInvalidEquityPercentage = errors.New("equity_percentage must be greater than 0 and at most 100")
	ErrInvalidVestingPeriod    = errors.New("vesting_period must be between 1 and 120 months")
	ErrInvalidCliffPeriod      = errors.New("cliff_period must be between 0 and 48 months and not exceed vesting_period")
	ErrInvalidSalary           = errors.New("salary must not be negative")
	ErrInvalidStatus           = errors.New("status must be ACCEPTED or REJECTED")
	ErrInvalidStakeholder      = errors.New("invalid stakeholder")
	ErrInvalidVestingWindow    = errors.New("vesting_end must not be before vesting_start")
	ErrInvalidCliffMonths      = errors.New("cliff_months must not be negative")
)
