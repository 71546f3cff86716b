// Package commands defines the ecoroute CLI and wires dependencies for subcommands.
//
// Commands
//
//   - impact     Convert kg of CO2 saved into trees and driving km
//   - emission   CO2 for a distance by transport mode or vehicle
//   - compare    Rank every mode over a distance, with savings and impact
//   - validate   Check an origin/destination pair as the route form would
//   - vehicles   List the vehicle catalogue
//   - search     Feed stdin lines through the debounced location search
//   - share      Compose share text and copy it to a clipboard file
//
// # Implementation
//
// The root command loads the configuration and builds the dependency graph
// (metrics, converter, services) before any subcommand runs, and writes the
// metrics file after it finishes when --metrics-file is set.
package commands
