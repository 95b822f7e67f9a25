// Package model provides the data structures shared by the pipeline package and its options.
// It defines the description of a registered step and the lifecycle hooks a pipeline option
// can implement to observe registration and execution.
package model
