package statemachine

import (
	"errors"

	"food-rescue-api/models"
)

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative lifecycle definition: the normal path
// moves one step at a time, and cancellation is reachable from every
// non-terminal state so an admin can always pull an order out of flight.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed},
	{From: models.StatusConfirmed, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusReady, To: models.StatusInTransit},
	{From: models.StatusInTransit, To: models.StatusDelivered},

	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusConfirmed, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusCancelled},
	{From: models.StatusInTransit, To: models.StatusCancelled},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// IsKnown reports whether a status value is part of the lifecycle at all
func IsKnown(status models.OrderStatus) bool {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
		models.StatusReady, models.StatusInTransit, models.StatusDelivered,
		models.StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions exist from a status
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
