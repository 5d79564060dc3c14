package classify

import "testing"

func TestClassify(t *testing.T) {
	const threshold = 45 * 60

	cases := []struct {
		name     string
		duration float64
		live     bool
		wantCat  Category
		wantConf Confidence
	}{
		{"long set with live indicator", 5400, true, CategoryLiveSet, ConfidenceHigh},
		{"long set without indicator", 3600, false, CategoryLiveSet, ConfidenceMedium},
		{"short clip", 200, false, CategoryMusicVideo, ConfidenceHigh},
		{"medium length video", 1200, false, CategoryMusicVideo, ConfidenceMedium},
		{"unknown duration", 0, false, CategoryUnknown, ConfidenceLow},
		{"unknown duration with live indicator", 0, true, CategoryUnknown, ConfidenceLow},
		{"short live performance", 300, true, CategoryLivePerformance, ConfidenceMedium},
		{"exactly at threshold", 2700, false, CategoryMusicVideo, ConfidenceMedium},
		{"exactly at threshold with indicator", 2700, true, CategoryLivePerformance, ConfidenceMedium},
		{"just over threshold", 2701, true, CategoryLiveSet, ConfidenceHigh},
		{"below short-form cutoff", 899, false, CategoryMusicVideo, ConfidenceHigh},
		{"at short-form cutoff", 900, false, CategoryMusicVideo, ConfidenceMedium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat, conf := Classify(tc.duration, tc.live, threshold)
			if cat != tc.wantCat || conf != tc.wantConf {
				t.Errorf("Classify(%v, %v, %d) = (%s, %s), want (%s, %s)",
					tc.duration, tc.live, threshold, cat, conf, tc.wantCat, tc.wantConf)
			}
		})
	}
}

func TestClassifyCustomThreshold(t *testing.T) {
	// A ten-minute threshold turns a twenty-minute video into a live set.
	cat, conf := Classify(1200, false, 600)
	if cat != CategoryLiveSet || conf != ConfidenceMedium {
		t.Fatalf("Classify(1200, false, 600) = (%s, %s), want (live_set, medium)", cat, conf)
	}
}
