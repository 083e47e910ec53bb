package execution

import "testing"

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	scheduler := NewRoundRobinScheduler()

	t.Run("distributes evenly", func(t *testing.T) {
		dirs := []string{"a", "b", "c", "d", "e"}
		distribution := scheduler.Schedule(dirs, 2)

		if len(distribution) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(distribution))
		}
		if len(distribution[0]) != 3 || len(distribution[1]) != 2 {
			t.Errorf("unexpected distribution: %v", distribution)
		}
		if distribution[0][0] != "a" || distribution[1][0] != "b" {
			t.Errorf("unexpected round-robin order: %v", distribution)
		}
	})

	t.Run("zero workers falls back to one", func(t *testing.T) {
		distribution := scheduler.Schedule([]string{"a"}, 0)
		if len(distribution) != 1 || len(distribution[0]) != 1 {
			t.Errorf("expected single bucket, got %v", distribution)
		}
	})

	t.Run("more workers than packages", func(t *testing.T) {
		distribution := scheduler.Schedule([]string{"a"}, 4)
		if len(distribution) != 4 {
			t.Fatalf("expected 4 buckets, got %d", len(distribution))
		}
		total := 0
		for _, bucket := range distribution {
			total += len(bucket)
		}
		if total != 1 {
			t.Errorf("expected 1 scheduled package, got %d", total)
		}
	})
}
