// Copyright 2025 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-app-metadata implements a web form for cataloguing geospatial dataset metadata, with records stored
to a Google Sheets worksheet, as local text files and in a Google Drive folder.

The form suggests keywords for a dataset from the most frequent words in its summary, ignoring common Spanish stop
words.

uhppoted-app-metadata supports the following commands:

  - authorise, to authorise application access to the Google Sheets worksheet and Google Drive folder
  - run, to run the metadata form and keyword extraction HTTP service
  - keywords, to extract the keywords from a summary on the command line
  - get, to download the metadata records worksheet as a TSV file
  - put, to append the records in a TSV file to the metadata records worksheet
*/
package metadata
