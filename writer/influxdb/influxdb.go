// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// InfluxDB client functions.

package influxdb

import (
	"os"
	"strings"

	"github.com/influxdata/influxdb/client/v2"
	log "github.com/sirupsen/logrus"

	"github.com/kvadrage/sx-ecmp-hash/config"
	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

const measurement = "sx_ecmp_hash"

type InfluxDBWriter struct {
	Config config.InfluxDBConf
}

// Receiver writes one batch of points per configuration run until input is closed.
func (w *InfluxDBWriter) Receiver(input chan []ecmp.Report) {
	c, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     w.Config.URL,
		Username: w.Config.Username,
		Password: w.Config.Password,
	})

	if err != nil {
		log.Error(err)
		// Drain input so that the dispatcher never blocks on this writer.
		for range input {
		}
		return
	}

	defer c.Close()

	if rtt, version, err := c.Ping(0); err == nil {
		log.WithFields(log.Fields{"version": version, "rtt": rtt}).Debug("InfluxDB ping reply")
	}

	hostname, _ := os.Hostname()

	for reports := range input {
		if err := w.write(c, hostname, reports); err != nil {
			log.WithError(err).WithField("url", w.Config.URL).Error("InfluxDB write failed")
		}
	}

	log.Debug("InfluxDBWriter input channel closed.")
}

func (w *InfluxDBWriter) write(c client.Client, hostname string, reports []ecmp.Report) error {
	batch, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:        w.Config.Database,
		RetentionPolicy: w.Config.RetentionPolicy,
		Precision:       "s",
	})
	if err != nil {
		return err
	}

	for _, r := range reports {
		point, err := reportPoint(hostname, r)
		if err != nil {
			return err
		}
		batch.AddPoint(point)
	}

	log.Debugf("InfluxDB batch contains %d points", len(batch.Points()))

	return c.Write(batch)
}

// reportPoint converts a single apply report into an InfluxDB point.
func reportPoint(hostname string, r ecmp.Report) (*client.Point, error) {
	tags := map[string]string{
		"host":   hostname,
		"scope":  r.Scope,
		"status": "ok",
	}

	fields := map[string]interface{}{
		"rc": int64(r.Status),
	}

	if r.Status != 0 {
		tags["status"] = "error"
	}

	switch {
	case r.Global != nil:
		fields["hash_type"] = r.Global.Type.String()
		fields["symmetric"] = r.Global.Symmetric
		fields["seed"] = int64(r.Global.Seed)
		fields["ecmp_hash"] = int64(r.Global.Hash)
	case r.Port != nil:
		tags["log_port"] = r.LogPort.String()
		fields["hash_type"] = r.Port.Type.String()
		fields["symmetric"] = r.Port.Symmetric
		fields["seed"] = int64(r.Port.Seed)
		fields["field_enables"] = enableNames(r.Port.Enables)
		fields["fields"] = fieldNames(r.Port.Fields)
	}

	return client.NewPoint(measurement, tags, fields, r.Time)
}

func enableNames(enables []ecmp.FieldEnable) string {
	names := make([]string, 0, len(enables))
	for _, e := range enables {
		names = append(names, e.String())
	}
	return strings.Join(names, ",")
}

func fieldNames(fields []ecmp.Field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}
