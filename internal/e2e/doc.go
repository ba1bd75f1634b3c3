// Package e2e runs the whole service against postgres and redis containers
// started with dockertest. Build with the e2e_test (or all_tests) tag.
package e2e
