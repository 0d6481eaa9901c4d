package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(m, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(m, ShouldNotBeNil)
			})
		})
	})
}

func TestRecordingHelpers(t *testing.T) {
	Convey("Given the package-level helpers", t, func() {
		Convey("Then roster counters record without panicking", func() {
			So(func() {
				RecordRowsRead(100)
				RecordRowsWritten(100)
				RecordInvalidCompensation()
			}, ShouldNotPanic)
		})

		Convey("And cohort metrics record without panicking", func() {
			So(func() {
				RecordCohort(true)
				RecordCohort(false)
				RecordCohortLatency(0.002)
				RecordAuditDuration(1.5)
			}, ShouldNotPanic)
		})

		Convey("And finding and worker metrics record without panicking", func() {
			So(func() {
				RecordFinding("gender")
				RecordFinding("ethnicity")
				UpdateWorkerCount(4)
			}, ShouldNotPanic)
		})
	})
}
