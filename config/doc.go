// SPDX-License-Identifier: MIT

// Package config holds the tuning values of a forcelayout simulation and the
// ways to obtain them: compiled-in defaults, a TOML file, and FORCELAYOUT_*
// environment variables.
//
// Precedence (lowest first):
//
//	Default()  ->  config file  ->  environment
//
// Every loaded Config is validated before it is returned, so a simulation
// built from one never sees a negative decay or an inverted viewport.
//
// Keys
//
//	viewport_width, viewport_height, border_margin
//	velocity_decay, alpha_decay, alpha_min, initial_alpha
//	reheat_alpha, drag_alpha_target
//	collision_padding, cluster_padding, repulsion_factor
//	link_base_distance, link_min_strength, link_iterations
//	max_collision_neighbor_radius, default_radius
//	charge_strength, charge_auto, charge_theta, charge_distance_max
//	center_force, pin_new_nodes, frame_rate
//
// Errors:
//
//	ErrInvalidConfig - a value failed validation; the wrapped message names
//	                   every offending key.
package config
