/*
Package inabooth-app-sheets keeps the INABOOTH app menu structure worksheet in Google Sheets in sync with
the exported storyboard HTML pages.

Each page file name encodes the page position in the menu hierarchy (e.g. '1-2-3 Order_History.html'). The
page is summarized (title, headings/labels and links/buttons) and written as a single row of the menu
structure worksheet. inabooth-app-sheets is intended to be run from the command line or a CI job after the
pages have been exported.

inabooth-app-sheets supports the following commands:

  - sync, to replace the data rows of the menu structure worksheet (the default command)
  - get, to download a worksheet range as a TSV file
  - history, to list previous sync runs recorded in the local history database
  - version, to display the current version
*/
package sheets
