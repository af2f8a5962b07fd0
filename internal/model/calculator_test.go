package model

import (
	"math"
	"testing"
)

func estimateTestResult(planks int) Result {
	return Result{
		Config:          LayoutConfig{Room: Dimensions{Width: 560, Height: 400}, Plank: Dimensions{Width: 130, Height: 25}},
		TotalPlanksUsed: planks,
	}
}

func TestCalculatePurchaseEstimateBasic(t *testing.T) {
	est := CalculatePurchaseEstimate(estimateTestResult(70), 8, 10.0, 45.00)

	expectedExact := 560.0 * 400.0 / (130.0 * 25.0)
	if math.Abs(est.PlanksExact-expectedExact) > 0.001 {
		t.Errorf("expected exact planks %.3f, got %.3f", expectedExact, est.PlanksExact)
	}
	if est.PlanksNeeded != 70 {
		t.Errorf("expected 70 planks, got %d", est.PlanksNeeded)
	}
	if est.PlanksWithWaste != 77 {
		t.Errorf("expected 77 planks with waste, got %d", est.PlanksWithWaste)
	}
	if est.BoxesNeeded != 9 {
		t.Errorf("expected 9 boxes, got %d", est.BoxesNeeded)
	}
	if est.BoxesWithWaste != 10 {
		t.Errorf("expected 10 boxes with waste, got %d", est.BoxesWithWaste)
	}
	if est.EstimatedCost != 450.0 {
		t.Errorf("expected cost 450.00, got %.2f", est.EstimatedCost)
	}
}

func TestCalculatePurchaseEstimateNoWaste(t *testing.T) {
	est := CalculatePurchaseEstimate(estimateTestResult(16), 8, 0, 0)
	if est.PlanksWithWaste != 16 {
		t.Errorf("expected 16 planks with 0%% waste, got %d", est.PlanksWithWaste)
	}
	if est.BoxesNeeded != 2 || est.BoxesWithWaste != 2 {
		t.Errorf("expected 2 boxes, got %d/%d", est.BoxesNeeded, est.BoxesWithWaste)
	}
}

func TestCalculatePurchaseEstimateZeroBoxSize(t *testing.T) {
	est := CalculatePurchaseEstimate(estimateTestResult(16), 0, 10, 30)
	if est.BoxesNeeded != 0 || est.EstimatedCost != 0 {
		t.Errorf("expected no boxes without a box size, got %d boxes cost %.2f", est.BoxesNeeded, est.EstimatedCost)
	}
	if est.PlanksWithWaste != 18 {
		t.Errorf("expected 18 planks with waste, got %d", est.PlanksWithWaste)
	}
}

func TestCalculatePurchaseEstimateZeroPlankArea(t *testing.T) {
	est := CalculatePurchaseEstimate(Result{}, 8, 10, 30)
	if est.PlanksExact != 0 || est.BoxesNeeded != 0 {
		t.Errorf("expected empty estimate, got %+v", est)
	}
}
