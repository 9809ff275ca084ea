/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package database

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/foodandhunger/backend/internal/system/error/serviceerror"
)

// MySQL server error numbers that indicate the submitted row was rejected
// rather than the server failing.
const (
	erDupEntry           = 1062
	erBadNullError       = 1048
	erDataTooLong        = 1406
	erTruncatedWrongVal  = 1366
	erWarnDataOutOfRange = 1264
	erNoReferencedRow    = 1452
	erCheckConstraint    = 3819
)

var constraintErrors = map[uint16]string{
	erDupEntry:           "duplicate value",
	erBadNullError:       "required value is missing",
	erDataTooLong:        "value is too long",
	erTruncatedWrongVal:  "incorrect value",
	erWarnDataOutOfRange: "value is out of range",
	erNoReferencedRow:    "referenced row does not exist",
	erCheckConstraint:    "check constraint violated",
}

// IsNoRows reports whether err means the query matched no row.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// ConstraintViolation reports whether err is a MySQL error caused by the data
// itself, and returns a short description that is safe to show to a client.
func ConstraintViolation(err error) (string, bool) {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return "", false
	}
	msg, ok := constraintErrors[mysqlErr.Number]
	return msg, ok
}

// ToServiceError converts a failed write or read into a ServiceError.
// Rows rejected by a constraint become validation errors; everything else is
// reported as a database error carrying description.
func ToServiceError(err error, description string) *serviceerror.ServiceError {
	if msg, ok := ConstraintViolation(err); ok {
		return serviceerror.CustomServiceError(serviceerror.ValidationError, msg)
	}
	return serviceerror.CustomServiceError(serviceerror.DatabaseError, description)
}
