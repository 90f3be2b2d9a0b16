// Package screen holds the state machines behind the converter screens.
//
// Every screen is a pure reducer: (current snapshot, event) -> next snapshot.
// Speed and temperature share ConversionState parameterized over a Strategy;
// currency extends it with a rate table and a fetch lifecycle. The calculator
// lives in package calc. Store layers observation on top of any reducer.
package screen
