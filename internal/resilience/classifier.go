package resilience

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"

	"github.com/aws/smithy-go"
	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// StatusError is a failure that carries an HTTP-like status code.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) HTTPStatusCode() int { return e.StatusCode }

type match struct {
	category Category
	code     string
}

// predicate inspects one aspect of a failure. The first predicate that
// reports ok decides the category.
type predicate func(err error) (match, bool)

// backendCodes maps storage-engine error codes (DynamoDB exception names,
// PostgreSQL SQLSTATE, PostgREST codes) to categories.
var backendCodes = map[string]Category{
	// DynamoDB
	"ConditionalCheckFailedException":          CategoryValidation,
	"ValidationException":                      CategoryValidation,
	"ResourceNotFoundException":                CategoryNotFound,
	"AccessDeniedException":                    CategoryAuthorization,
	"UnrecognizedClientException":              CategoryAuthentication,
	"ExpiredTokenException":                    CategoryAuthentication,
	"InvalidSignatureException":                CategoryAuthentication,
	"MissingAuthenticationToken":               CategoryAuthentication,
	"ProvisionedThroughputExceededException":   CategoryServer,
	"ThrottlingException":                      CategoryServer,
	"RequestLimitExceeded":                     CategoryServer,
	"InternalServerError":                      CategoryServer,
	"ServiceUnavailable":                       CategoryServer,
	"TransactionConflictException":             CategoryDatabase,
	"TransactionCanceledException":             CategoryDatabase,
	"ItemCollectionSizeLimitExceededException": CategoryDatabase,
	"ResourceInUseException":                   CategoryDatabase,

	// PostgreSQL SQLSTATE
	"23505": CategoryValidation, // unique_violation
	"23503": CategoryValidation, // foreign_key_violation
	"23502": CategoryValidation, // not_null_violation
	"23514": CategoryValidation, // check_violation
	"22P02": CategoryValidation, // invalid_text_representation
	"42501": CategoryAuthorization,
	"28000": CategoryAuthentication,
	"28P01": CategoryAuthentication,
	"42P01": CategoryDatabase, // undefined_table
	"40001": CategoryDatabase, // serialization_failure
	"40P01": CategoryDatabase, // deadlock_detected
	"53300": CategoryServer,   // too_many_connections
	"57P01": CategoryServer,   // admin_shutdown
	"08001": CategoryNetwork,
	"08006": CategoryNetwork,

	// PostgREST
	"PGRST116": CategoryNotFound,
	"PGRST301": CategoryAuthentication,
}

var (
	authMarkers    = []string{"auth", "token", "credential", "login"}
	networkMarkers = []string{
		"network",
		"fetch",
		"connection refused",
		"connection reset",
		"broken pipe",
		"no such host",
		"timeout",
		"timed out",
		"dial tcp",
		"unexpected eof",
	}
)

// Classifier maps arbitrary failures into a Category using an ordered chain
// of typed predicates.
type Classifier struct {
	online func() bool
	chain  []predicate
}

// NewClassifier builds a classifier. online reports current connectivity;
// nil means always online.
func NewClassifier(online func() bool) *Classifier {
	c := &Classifier{online: online}
	c.chain = []predicate{
		c.offlineFailure,
		backendCodeFailure,
		statusCodeFailure,
		authMessageFailure,
		networkFailure,
	}
	return c
}

var defaultClassifier = NewClassifier(nil)

// Classify uses a classifier that assumes connectivity.
func Classify(err error) Category { return defaultClassifier.Classify(err) }

// Standardize uses a classifier that assumes connectivity.
func Standardize(err error) *Error { return defaultClassifier.Standardize(err) }

func (c *Classifier) Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	var stdErr *Error
	if errors.As(err, &stdErr) {
		return stdErr.Category
	}
	return c.match(err).category
}

// Standardize converts err into the standardized shape. Errors that are
// already standardized are returned unchanged.
func (c *Classifier) Standardize(err error) *Error {
	if err == nil {
		return nil
	}
	var stdErr *Error
	if errors.As(err, &stdErr) {
		return stdErr
	}
	m := c.match(err)
	return &Error{
		Message:     Message(m.category),
		Category:    m.category,
		Code:        m.code,
		Err:         err,
		Suggestions: Suggestions(m.category),
	}
}

func (c *Classifier) match(err error) match {
	for _, p := range c.chain {
		if m, ok := p(err); ok {
			return m
		}
	}
	return match{category: CategoryUnknown}
}

func (c *Classifier) offlineFailure(err error) (match, bool) {
	if errors.Is(err, ErrOffline) {
		return match{category: CategoryOffline}, true
	}
	if c.online != nil && !c.online() {
		return match{category: CategoryOffline}, true
	}
	return match{}, false
}

func backendCodeFailure(err error) (match, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		if cat, ok := backendCodes[code]; ok {
			return match{category: cat, code: code}, true
		}
		return match{}, false
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if cat, ok := sqliteCategory(code); ok {
			return match{category: cat, code: "sqlite_" + strconv.Itoa(code)}, true
		}
		return match{}, false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if cat, ok := backendCodes[code]; ok {
			return match{category: cat, code: code}, true
		}
		return match{}, false
	}

	var coded interface{ ErrorCode() string }
	if errors.As(err, &coded) {
		code := coded.ErrorCode()
		if cat, ok := backendCodes[code]; ok {
			return match{category: cat, code: code}, true
		}
	}
	return match{}, false
}

func sqliteCategory(code int) (Category, bool) {
	switch code & 0xff {
	case sqlite3lib.SQLITE_CONSTRAINT, sqlite3lib.SQLITE_MISMATCH, sqlite3lib.SQLITE_TOOBIG:
		return CategoryValidation, true
	case sqlite3lib.SQLITE_PERM, sqlite3lib.SQLITE_AUTH:
		return CategoryAuthorization, true
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED, sqlite3lib.SQLITE_IOERR,
		sqlite3lib.SQLITE_CORRUPT, sqlite3lib.SQLITE_FULL, sqlite3lib.SQLITE_CANTOPEN,
		sqlite3lib.SQLITE_READONLY:
		return CategoryDatabase, true
	}
	return "", false
}

func statusCodeFailure(err error) (match, bool) {
	var withStatus interface{ HTTPStatusCode() int }
	if !errors.As(err, &withStatus) {
		return match{}, false
	}
	status := withStatus.HTTPStatusCode()
	var cat Category
	switch {
	case status == http.StatusBadRequest, status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		cat = CategoryValidation
	case status == http.StatusUnauthorized:
		cat = CategoryAuthentication
	case status == http.StatusForbidden:
		cat = CategoryAuthorization
	case status == http.StatusNotFound:
		cat = CategoryNotFound
	case status == http.StatusTooManyRequests, status >= 500 && status <= 599:
		cat = CategoryServer
	default:
		return match{}, false
	}
	return match{category: cat, code: strconv.Itoa(status)}, true
}

func authMessageFailure(err error) (match, bool) {
	if containsAny(strings.ToLower(err.Error()), authMarkers) {
		return match{category: CategoryAuthentication}, true
	}
	return match{}, false
}

func networkFailure(err error) (match, bool) {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return match{category: CategoryNetwork}, true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return match{category: CategoryNetwork}, true
	}
	if containsAny(strings.ToLower(err.Error()), networkMarkers) {
		return match{category: CategoryNetwork}, true
	}
	return match{}, false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
