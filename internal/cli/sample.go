package cli

// sampleOutline is rendered when no input file is given.
const sampleOutline = `Hierarchical Notes
  Write an outline in plain text
    Indent two spaces per level
    Each line becomes a box
  Long lines wrap inside their box so that nothing runs past the right edge of the diagram
  Run hnotes notes.txt to render your own file
Output
  hierarchical_notes.html
    Open it in any browser
  Other formats with --format
    svg
    json
    pdf and png need rsvg-convert`
