package editor

// Help lists the key bindings. It is printed to the terminal at startup
// since the terminal is also where prompts are answered.
const Help = `Directions:
  w/a/s/d         move the cursor up/left/down/right
  W/S             move the cursor in/out
  space           add a vertex at the cursor
  f               add the selected vertex again (shared corner)
  c               remove the selected vertex
  C               clear the working model
  p/P             close the current face / reopen the last face
  tab/shift-tab   select next/previous vertex, esc clears
  click           pick a palette color, select a vertex or jump to a cell
  arrows          pan the view, shift+up/down moves in/out
  ctrl+arrows     rotate the view, alt+left/right rolls
  right drag      orbit, wheel zooms
  backspace       reset view, cursor and light
  o/g/x/h/m       toggle working model/grid/axis/highlight/wireframe
  t/T             toggle lighting / move the light with the cursor keys
  [ ]             ambient light down/up
  R               spin the working model
  G               redefine the grid
  r               split the current face into triangles
  1-9             show/hide a stored model
  F1-F9           swap the working model with a stored model
  enter/l         save/load
  M               merge a stored model into the working model
  > <             translate / mirror along an axis
  q               quit
`
