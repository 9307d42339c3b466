package timeline

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/matchline/internal/domain/model"
)

func TestExtractStats(t *testing.T) {
	Convey("Given the statistics panel", t, func() {
		Convey("When the panel holds possession and metric rows", func() {
			doc := testDoc(`
				<div class="tab-content-item inner-match-tab-content stats">
					<div class="progress-wrapper">
						<span class="team-a">55%</span>
						<span class="team-b">45%</span>
					</div>
					<div class="progress-state-item">
						<div class="title">التسديدات</div>
						<div class="text"><span>7</span><span>-</span><span>3</span></div>
					</div>
					<div class="progress-state-item">
						<div class="title">الأهداف المتوقعة</div>
						<div class="text"><span>1.4</span><span>-</span><span>0.8</span></div>
					</div>
					<div class="progress-state-item">
						<div class="title">التمريرات الناجحة</div>
						<div class="text"><span>351 (89%)</span><span>-</span><span>240 (81%)</span></div>
					</div>
				</div>`)
			stats := extractStats(doc)

			Convey("Then possession percentages coerce to integers", func() {
				So(stats["الاستحواذ"], ShouldResemble, model.StatPair{Home: 55, Away: 45})
			})

			Convey("Then all-digit cells coerce to integers", func() {
				So(stats["التسديدات"], ShouldResemble, model.StatPair{Home: 7, Away: 3})
			})

			Convey("Then decimal cells coerce to floats", func() {
				So(stats["الأهداف المتوقعة"], ShouldResemble, model.StatPair{Home: 1.4, Away: 0.8})
			})

			Convey("Then composite cells stay strings", func() {
				So(stats["التمريرات الناجحة"], ShouldResemble, model.StatPair{Home: "351 (89)", Away: "240 (81)"})
			})
		})

		Convey("When a metric row is missing its away span", func() {
			doc := testDoc(`
				<div class="tab-content-item inner-match-tab-content stats">
					<div class="progress-state-item">
						<div class="title">التسديدات</div>
						<div class="text"><span>7</span></div>
					</div>
				</div>`)

			Convey("Then the row is skipped", func() {
				So(extractStats(doc), ShouldBeEmpty)
			})
		})

		Convey("When the panel is absent", func() {
			doc := testDoc(`<div class="match-details"></div>`)

			Convey("Then an empty map results", func() {
				stats := extractStats(doc)
				So(stats, ShouldNotBeNil)
				So(stats, ShouldBeEmpty)
			})
		})
	})
}

func TestParseMetric(t *testing.T) {
	Convey("Given raw statistic cells", t, func() {
		Convey("When the cell is all digits", func() {
			So(parseMetric(" 12 "), ShouldEqual, 12)
		})

		Convey("When the cell is a percentage", func() {
			So(parseMetric("55%"), ShouldEqual, 55)
		})

		Convey("When the cell is a decimal", func() {
			So(parseMetric("1.4"), ShouldEqual, 1.4)
		})

		Convey("When the cell is not numeric", func() {
			So(parseMetric(" n/a "), ShouldEqual, "n/a")
		})

		Convey("When the cell is empty", func() {
			So(parseMetric("  "), ShouldEqual, "")
		})
	})
}
