package schedule

import (
	"testing"

	"pawcare/models"
)

func slot(start, end string) models.Slot {
	return models.Slot{StartTime: start, EndTime: end}
}

func TestMerge_Contiguous(t *testing.T) {
	blocks, err := Merge([]models.Slot{
		slot("9:00 AM", "9:30 AM"),
		slot("9:30 AM", "10:00 AM"),
		slot("10:15 AM", "10:45 AM"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].StartTime != "9:00 AM" || blocks[0].EndTime != "10:00 AM" {
		t.Errorf("block 0 = %s-%s", blocks[0].StartTime, blocks[0].EndTime)
	}
	if blocks[1].StartTime != "10:15 AM" || blocks[1].EndTime != "10:45 AM" {
		t.Errorf("block 1 = %s-%s", blocks[1].StartTime, blocks[1].EndTime)
	}
}

func TestMerge_UnsortedAndOverlapping(t *testing.T) {
	blocks, err := Merge([]models.Slot{
		slot("2:00 PM", "3:00 PM"),
		slot("9:00 AM", "11:00 AM"),
		slot("10:30 AM", "12:00 PM"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].StartTime != "9:00 AM" || blocks[0].EndTime != "12:00 PM" {
		t.Errorf("block 0 = %s-%s", blocks[0].StartTime, blocks[0].EndTime)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	once, err := Merge([]models.Slot{
		slot("9:00 AM", "10:00 AM"),
		slot("10:15 AM", "10:45 AM"),
	})
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Merge(once)
	if err != nil {
		t.Fatal(err)
	}
	if len(once) != len(twice) {
		t.Fatalf("merge not idempotent: %d vs %d blocks", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("block %d changed on re-merge: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestMerge_Empty(t *testing.T) {
	blocks, err := Merge(nil)
	if err != nil {
		t.Fatal(err)
	}
	if blocks == nil || len(blocks) != 0 {
		t.Fatalf("expected empty block list, got %v", blocks)
	}
}

func TestMerge_BadInput(t *testing.T) {
	if _, err := Merge([]models.Slot{slot("morning", "10:00 AM")}); err == nil {
		t.Fatal("expected error for unparsable slot")
	}
}
