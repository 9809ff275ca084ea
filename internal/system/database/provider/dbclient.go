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

// Package provider provides the database client used by the resource stores.
package provider

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	dbmodel "github.com/foodandhunger/backend/internal/system/database/model"
	"github.com/foodandhunger/backend/internal/system/log"
)

// DBClientInterface runs DBQuery objects against the database.
type DBClientInterface interface {
	// Get scans a single row into dest. Returns sql.ErrNoRows when nothing matches.
	Get(ctx context.Context, dest interface{}, query dbmodel.DBQuery, args ...interface{}) error
	// Select scans all matching rows into dest, which must be a pointer to a slice.
	Select(ctx context.Context, dest interface{}, query dbmodel.DBQuery, args ...interface{}) error
	// Execute runs a statement that returns no rows.
	Execute(ctx context.Context, query dbmodel.DBQuery, args ...interface{}) (sql.Result, error)
}

// DBClient is the sqlx backed implementation of DBClientInterface.
type DBClient struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

var _ DBClientInterface = (*DBClient)(nil)

// NewDBClient creates a new DBClient over an open sqlx handle.
func NewDBClient(db *sqlx.DB) *DBClient {
	return &DBClient{
		db:     db,
		logger: log.WithComponent("DBClient"),
	}
}

// Get scans a single row into dest.
func (c *DBClient) Get(ctx context.Context, dest interface{}, query dbmodel.DBQuery, args ...interface{}) error {
	start := time.Now()
	err := c.db.GetContext(ctx, dest, query.GetQuery(), args...)
	c.trace(ctx, query, start, err)
	return err
}

// Select scans all matching rows into dest.
func (c *DBClient) Select(ctx context.Context, dest interface{}, query dbmodel.DBQuery, args ...interface{}) error {
	start := time.Now()
	err := c.db.SelectContext(ctx, dest, query.GetQuery(), args...)
	c.trace(ctx, query, start, err)
	return err
}

// Execute runs a statement that returns no rows.
func (c *DBClient) Execute(ctx context.Context, query dbmodel.DBQuery, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := c.db.ExecContext(ctx, query.GetQuery(), args...)
	c.trace(ctx, query, start, err)
	return result, err
}

func (c *DBClient) trace(ctx context.Context, query dbmodel.DBQuery, start time.Time, err error) {
	entry := log.FromContext(ctx, c.logger).WithFields(logrus.Fields{
		"query_id": query.GetID(),
		"duration": time.Since(start).String(),
	})
	if err != nil && err != sql.ErrNoRows {
		entry.WithError(err).Debug("Query failed")
		return
	}
	entry.Debug("Query executed")
}
