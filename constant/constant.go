package constant

// record storage constants
const (
	RECORD_KEY_PREFIX  string = "phone:"
	RECORD_KEY_PATTERN string = "phone:*"
)

const DEFAULT_PAGE_LIMIT int = 20
const MAX_PAGE_LIMIT int = 100

const PHONE_MAX_LENGTH int = 20
const ADDRESS_MAX_LENGTH int = 500
