package services

import (
	"testing"
)

func TestComputeReward_LevelOne(t *testing.T) {
	reward, ok := ComputeReward(10000, 1)
	if !ok {
		t.Fatal("Expected level 1 to earn a reward")
	}
	if !floatEquals(reward, 3000, 0.001) {
		t.Errorf("Expected 30%% of 10000 = 3000, got %.2f", reward)
	}
}

func TestComputeReward_LevelTwo(t *testing.T) {
	reward, ok := ComputeReward(10000, 2)
	if !ok {
		t.Fatal("Expected level 2 to earn a reward")
	}
	if !floatEquals(reward, 300, 0.001) {
		t.Errorf("Expected 3%% of 10000 = 300, got %.2f", reward)
	}
}

func TestComputeReward_DeeperLevelsEarnNothing(t *testing.T) {
	for _, level := range []int{3, 4, 10, 0, -1} {
		if reward, ok := ComputeReward(10000, level); ok {
			t.Errorf("Level %d should earn nothing, got %.2f", level, reward)
		}
	}
}

func TestComputeReward_RoundsToTwoDecimals(t *testing.T) {
	// 30% of 1033.33 is 309.999; must round to 310.00
	reward, ok := ComputeReward(1033.33, 1)
	if !ok {
		t.Fatal("Expected level 1 to earn a reward")
	}
	if !floatEquals(reward, 310.00, 0.0001) {
		t.Errorf("Expected 310.00, got %.4f", reward)
	}

	// 3% of 1033.33 is 30.9999; must round to 31.00
	reward, ok = ComputeReward(1033.33, 2)
	if !ok {
		t.Fatal("Expected level 2 to earn a reward")
	}
	if !floatEquals(reward, 31.00, 0.0001) {
		t.Errorf("Expected 31.00, got %.4f", reward)
	}
}

func TestRewardSchedule_CapsAtTwoLevels(t *testing.T) {
	if len(RewardSchedule) != 2 {
		t.Fatalf("Expected a 2-tier schedule, got %d tiers", len(RewardSchedule))
	}
	if RewardSchedule[0].Level != 1 || !floatEquals(RewardSchedule[0].Percentage, 0.30, 0.0001) {
		t.Errorf("Tier 1 should be level 1 at 30%%, got level %d at %.2f", RewardSchedule[0].Level, RewardSchedule[0].Percentage)
	}
	if RewardSchedule[1].Level != 2 || !floatEquals(RewardSchedule[1].Percentage, 0.03, 0.0001) {
		t.Errorf("Tier 2 should be level 2 at 3%%, got level %d at %.2f", RewardSchedule[1].Level, RewardSchedule[1].Percentage)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.005, 1.0},   // float64 representation of 1.005 is just below
		{1.006, 1.01},
		{309.999, 310.00},
		{0, 0},
		{99.994, 99.99},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); !floatEquals(got, tc.want, 0.000001) {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
