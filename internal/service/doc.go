// Package service contains the application services that orchestrate
// validation and persistence for the API's resources.
package service
