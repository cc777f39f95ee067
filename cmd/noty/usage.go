package main

const shortUsage = `Usage:
  noty <text>         - Add a note (shorthand)
  noty -a <text>      - Add a note
  noty -l             - List all notes
  noty -r <id>        - Remove a note by ID
  noty -e [file]      - Export notes to text file
  noty -c             - Clear all notes (with confirmation)
  noty -f             - Fix duplicate IDs (maintenance)
  noty -h             - Show help message
`

const helpText = `Noty - Simple command line note-taking tool

Usage:
  noty <text>           - Add a note (shorthand)
  noty -a <text>        - Add a note
  noty --add <text>     - Add a note
  noty -l               - List all notes
  noty --list           - List all notes
  noty --json           - List all notes as JSON
  noty -r <id>          - Remove a note by ID
  noty --remove <id>    - Remove a note by ID
  noty -e [file]        - Export notes to text file
  noty --export [file]  - Export notes to text file
  noty -c               - Clear all notes (with confirmation)
  noty --clear          - Clear all notes (with confirmation)
  noty -f               - Fix duplicate IDs (maintenance)
  noty --fix            - Fix duplicate IDs (maintenance)
  noty -w               - List notes and refresh on every change
  noty --watch          - List notes and refresh on every change
  noty -h               - Show this help message
  noty --help           - Show this help message

Options:
  --store <path>        - Notes file (default ~/.noty_notes.json, env NOTY_STORE)
  -v, --verbose         - Enable debug logging
  --version             - Print the version

Note: To add text starting with '-', use: noty -- "-your text"
`
