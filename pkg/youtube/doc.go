// Package youtube embeds a YouTube video in a native view by driving a
// bundled HTML page through a web rendering surface. Native method calls
// (play, pause, seek, load) are marshaled as JavaScript snippets evaluated
// against the page's player object; the page signals readiness, state, and
// quality changes back by navigating to a reserved ytplayer:// scheme,
// which the component intercepts and decodes.
package youtube
