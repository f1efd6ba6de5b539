// Package main is the entry point of throwback-posts, a small blog engine
// whose footer widget lists the posts published on the same day one week,
// one month or up to seven years ago.
//
// Run "throwback-posts start" to serve the site, "throwback-posts import"
// to load posts from JSON and "throwback-posts preview --date 2024-06-15"
// to check what the widget would show on a given day.
package main
