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

package utils

import (
	"fmt"
	"strings"
)

// LikeEscapeChar is the escape character declared on every LIKE condition.
// It is not a backslash so the clause parses the same under NO_BACKSLASH_ESCAPES.
const LikeEscapeChar = "!"

var likeEscaper = strings.NewReplacer(
	LikeEscapeChar, LikeEscapeChar+LikeEscapeChar,
	`%`, LikeEscapeChar+`%`,
	`_`, LikeEscapeChar+`_`,
)

// ContainsPattern builds a lower-cased LIKE pattern that matches any value
// containing term as a literal substring. Wildcards in term are escaped with
// LikeEscapeChar.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// BuildContainsQuery appends a WHERE clause matching rows where any of the
// given columns contains the search term, ignoring case. Each column takes
// one placeholder; bind them with ContainsArgs.
func BuildContainsQuery(baseQuery string, columns ...string) string {
	conditions := make([]string, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '%s'", column, LikeEscapeChar))
	}
	return fmt.Sprintf("%s WHERE %s", baseQuery, strings.Join(conditions, " OR "))
}

// ContainsArgs returns the bind arguments for a query built by BuildContainsQuery.
func ContainsArgs(term string, columnCount int) []interface{} {
	pattern := ContainsPattern(term)
	args := make([]interface{}, columnCount)
	for i := range args {
		args[i] = pattern
	}
	return args
}

// BuildOrderByQuery adds ORDER BY clause to a query.
func BuildOrderByQuery(baseQuery string, orderBy string, ascending bool) string {
	direction := "ASC"
	if !ascending {
		direction = "DESC"
	}
	return fmt.Sprintf("%s ORDER BY %s %s", baseQuery, orderBy, direction)
}
