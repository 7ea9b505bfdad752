package models

import "testing"

func TestProgressBucket(t *testing.T) {
	cases := []struct {
		progress int
		want     string
	}{
		{0, BucketAguardando},
		{10, BucketAguardando},
		{19, BucketAguardando},
		{20, BucketProducao},
		{50, BucketProducao},
		{79, BucketProducao},
		{80, BucketAcabamento},
		{99, BucketAcabamento},
		{100, BucketConcluido},
	}
	for _, tc := range cases {
		if got := ProgressBucket(tc.progress); got != tc.want {
			t.Errorf("ProgressBucket(%d) = %s, want %s", tc.progress, got, tc.want)
		}
	}
}

func TestProgressBucket_CoversEveryValue(t *testing.T) {
	for p := 0; p <= 100; p++ {
		bucket := ProgressBucket(p)
		switch bucket {
		case BucketAguardando, BucketProducao, BucketAcabamento, BucketConcluido:
		default:
			t.Fatalf("ProgressBucket(%d) returned unknown bucket %q", p, bucket)
		}
	}
}
