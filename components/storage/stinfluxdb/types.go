package stinfluxdb

// MeasurementOutcome is the influxDB measurement of the dispatch outcomes.
const MeasurementOutcome = "cast_outcome"

// DBParams provides various configuration options for influxDB.
type DBParams struct {
	URL    string
	Org    string
	Token  string
	Bucket string
}
