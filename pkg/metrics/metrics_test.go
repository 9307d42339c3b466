package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording assembly metrics", func() {
			Convey("Then it should record assembled matches", func() {
				So(func() {
					RecordMatchAssembled()
					RecordMatchAssembled()
				}, ShouldNotPanic)
			})

			Convey("And it should record dropped and duplicate fragments", func() {
				So(func() {
					RecordFragmentDropped()
					RecordFragmentDuplicate()
				}, ShouldNotPanic)
			})

			Convey("And it should record assembly duration", func() {
				So(func() {
					RecordAssembleDuration(1.5)
					RecordAssembleDuration(12.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording fetch metrics", func() {
			Convey("Then it should record errors and durations by document", func() {
				So(func() {
					RecordFetchError("match_page")
					RecordFetchError("detail_feed")
					RecordFetchDuration("match_page", 80.0)
					RecordFixtureListing()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					RecordHTTPRequest("match", "GET", "200")
					RecordHTTPRequestDuration("match", "GET", "200", 5.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		Convey("When gathering after recording", func() {
			RecordMatchAssembled()
			families, err := GetRegistry().Gather()

			Convey("Then the assembled counter is exposed", func() {
				So(err, ShouldBeNil)

				found := false
				for _, fam := range families {
					if fam.GetName() == "matchline_scraper_matches_assembled_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}
