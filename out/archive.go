// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/nakanishi-coder/gofea/fem"
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrRunNotFound is returned when a run does not exist in the archive
var ErrRunNotFound = chk.Err("run not found")

// memdbs counts in-memory databases; each archive gets its own
var memdbs atomic.Int64

// Run holds one archived analysis
type Run struct {
	gorm.Model
	Name        string         `json:"name" gorm:"size:127;index:idx_run_name"`
	Description string         `json:"description" gorm:"size:255"`
	NumNodes    int            `json:"numNodes"`
	NumElements int            `json:"numElements"`
	MaxDisp     float64        `json:"maxDisp"`
	MaxStress   float64        `json:"maxStress"`
	ModelData   datatypes.JSON `json:"model"`
	SettingData datatypes.JSON `json:"settings"`
	ResultData  datatypes.JSON `json:"result"`
}

// Record holds an archived analysis with decoded data
type Record struct {
	Run      Run
	Model    *inp.Model
	Settings *inp.Settings
	Result   *fem.Result
}

// Archive stores models and results of analyses in a SQL database
type Archive struct {
	db  *gorm.DB
	Log zerolog.Logger
}

// OpenArchive connects to a database
//  driver -- "sqlite" or "postgres"
//  dsn    -- file path (sqlite) or connection string (postgres). An empty path gives a new
//            in-memory sqlite database that lives until Close
func OpenArchive(driver, dsn string) (o *Archive, err error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = fmt.Sprintf("file:gofea-%d?mode=memory&cache=shared", memdbs.Add(1))
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	default:
		return nil, chk.Err("archive driver %q is not available; use \"sqlite\" or \"postgres\"", driver)
	}
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, chk.Err("cannot open %s archive:\n%v", driver, err)
	}
	return &Archive{db: db, Log: zerolog.Nop()}, nil
}

// AutoMigrate creates or updates the tables
func (o *Archive) AutoMigrate() (err error) {
	if err = o.db.AutoMigrate(&Run{}); err != nil {
		return chk.Err("cannot migrate archive:\n%v", err)
	}
	return
}

// Close closes the connection
func (o *Archive) Close() (err error) {
	sqlDB, err := o.db.DB()
	if err != nil {
		return
	}
	return sqlDB.Close()
}

// Save stores a model with its settings and result. Returns the id of the new run
func (o *Archive) Save(name, desc string, model *inp.Model, settings *inp.Settings, res *fem.Result) (id uint, err error) {
	if model == nil || res == nil {
		return 0, chk.Err("model and result must not be nil")
	}
	if settings == nil {
		settings = inp.DefaultSettings()
	}
	run := Run{Name: name, Description: desc, NumNodes: len(model.Nodes), NumElements: len(model.Elements)}
	_, run.MaxDisp = res.MaxDisp()
	_, run.MaxStress = res.StressRange()
	if run.ModelData, err = json.Marshal(model); err != nil {
		return
	}
	if run.SettingData, err = json.Marshal(settings); err != nil {
		return
	}
	if run.ResultData, err = json.Marshal(res); err != nil {
		return
	}
	if err = o.db.Create(&run).Error; err != nil {
		return 0, chk.Err("cannot save run %q:\n%v", name, err)
	}
	o.Log.Debug().Uint("id", run.ID).Str("name", name).Msg("run archived")
	return run.ID, nil
}

// Load returns a run with decoded model, settings and result
func (o *Archive) Load(id uint) (rec *Record, err error) {
	rec = new(Record)
	if err = o.db.First(&rec.Run, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrRunNotFound, id)
		}
		return nil, err
	}
	rec.Model, rec.Settings, rec.Result = new(inp.Model), new(inp.Settings), new(fem.Result)
	if err = json.Unmarshal(rec.Run.ModelData, rec.Model); err != nil {
		return nil, chk.Err("cannot decode model of run %d:\n%v", id, err)
	}
	if err = json.Unmarshal(rec.Run.SettingData, rec.Settings); err != nil {
		return nil, chk.Err("cannot decode settings of run %d:\n%v", id, err)
	}
	if err = json.Unmarshal(rec.Run.ResultData, rec.Result); err != nil {
		return nil, chk.Err("cannot decode result of run %d:\n%v", id, err)
	}
	return
}

// List returns all runs (without model and result data) ordered by id
func (o *Archive) List() (runs []Run, err error) {
	err = o.db.Omit("model_data", "setting_data", "result_data").Order("id").Find(&runs).Error
	return
}
