// Package models holds the preset tables behind the animated widgets and the
// pure geometry derived from them.
//
// Every widget is a fixed sequence of parameter snapshots ("frames") drawn on a
// 600x300 plot:
//
//   - [LinearRegression]: slope/intercept pairs fitted to five points
//   - [LogisticRegression]: weight/bias triples separating ten labeled points
//   - [MultiLayerPerceptron]: per-layer activations lighting up layer by layer
//   - [DecisionTree]: one split per selectable field
//
// Nothing here keeps state. Callers pick a step (see package playback) and ask
// for the geometry and metrics of that step.
package models
